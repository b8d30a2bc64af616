package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateEquipmentDTO struct {
	UUID              *string `json:"uuid" validate:"omitempty,uuid4"`
	TechnicalCode     string  `json:"technical_code" validate:"required,min=1"`
	Name              string  `json:"name" validate:"required,min=1"`
	SerialNumber      string  `json:"serial_number" validate:"required,min=1"`
	Description       *string `json:"description" validate:"omitempty"`
	State             string  `json:"state" validate:"omitempty,oneof=instalado en_mantenimiento mantenimiento_pendiente en_reparaciones reparaciones_pendientes en_inventario descomisionado transferencia_pendiente"`
	DependsOn         *string `json:"depends_on" validate:"omitempty,uuid4"`
	BrandID           int     `json:"brand_id" validate:"required,gt=0"`
	TechnicalLocation *string `json:"technical_location" validate:"omitempty,min=1"`
	TransferLocation  *string `json:"transfer_location" validate:"omitempty,min=1"`
}

type UpdateEquipmentDTO = CreateEquipmentDTO

func (d CreateEquipmentDTO) ToEntity() entities.Equipment {
	equipment := entities.Equipment{
		TechnicalCode:     d.TechnicalCode,
		Name:              d.Name,
		SerialNumber:      d.SerialNumber,
		Description:       null.StringFromPtr(d.Description),
		State:             d.State,
		DependsOn:         null.StringFromPtr(d.DependsOn),
		BrandID:           d.BrandID,
		TechnicalLocation: null.StringFromPtr(d.TechnicalLocation),
		TransferLocation:  null.StringFromPtr(d.TransferLocation),
	}
	if d.UUID != nil {
		equipment.UUID = *d.UUID
	} else {
		equipment.UUID = uuid.NewString()
	}
	if equipment.State == "" {
		equipment.State = entities.EquipmentStateInStock
	}
	return equipment
}
