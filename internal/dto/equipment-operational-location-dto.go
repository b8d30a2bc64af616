package dto

import "gema-backend/internal/entities"

type CreateEquipmentOperationalLocationDTO struct {
	EquipmentUUID         string `json:"equipment_uuid" validate:"required,uuid4"`
	LocationTechnicalCode string `json:"location_technical_code" validate:"required,min=1"`
}

type UpdateEquipmentOperationalLocationDTO = CreateEquipmentOperationalLocationDTO

func (d CreateEquipmentOperationalLocationDTO) ToEntity() entities.EquipmentOperationalLocation {
	return entities.EquipmentOperationalLocation{
		EquipmentUUID:         d.EquipmentUUID,
		LocationTechnicalCode: d.LocationTechnicalCode,
	}
}
