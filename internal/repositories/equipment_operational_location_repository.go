package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

// Composite primary key: one join row per (equipment, location) pair.
var EquipmentOperationalLocationDescriptor = Descriptor{
	Table:         "equipment_operational_locations",
	Name:          "EquipmentOperationalLocation",
	Columns:       []string{"equipment_uuid", "location_technical_code", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"equipment_uuid", "location_technical_code"},
	PK:            []string{"equipment_uuid", "location_technical_code"},
}

var equipmentOperationalLocationMapper = RowMapper[entities.EquipmentOperationalLocation]{
	ScanDest: func(a *entities.EquipmentOperationalLocation) []interface{} {
		return []interface{}{&a.EquipmentUUID, &a.LocationTechnicalCode, &a.UpdatedAt, &a.CreatedAt, &a.DeletedAt}
	},
	InsertValues: func(a entities.EquipmentOperationalLocation) []interface{} {
		return []interface{}{a.EquipmentUUID, a.LocationTechnicalCode}
	},
}

func NewEquipmentOperationalLocationRepository(storage *pgxpool.Pool) *CrudRepository[entities.EquipmentOperationalLocation] {
	return NewCrudRepository(storage, EquipmentOperationalLocationDescriptor, equipmentOperationalLocationMapper)
}
