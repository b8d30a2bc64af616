package entities

// EquipmentOperationalLocation is the equipment/location join row. The pair
// (EquipmentUUID, LocationTechnicalCode) is the composite primary key, so a
// duplicate assignment is rejected by storage even if two requests race past
// the application-level existence check.
type EquipmentOperationalLocation struct {
	EquipmentUUID         string `json:"equipment_uuid"`
	LocationTechnicalCode string `json:"location_technical_code"`
	Timestamps
}
