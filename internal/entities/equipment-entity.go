package entities

import "github.com/aarondl/null/v8"

const (
	EquipmentStateInstalled          = "instalado"
	EquipmentStateInMaintenance      = "en_mantenimiento"
	EquipmentStateMaintenancePending = "mantenimiento_pendiente"
	EquipmentStateInRepair           = "en_reparaciones"
	EquipmentStateRepairPending      = "reparaciones_pendientes"
	EquipmentStateInStock            = "en_inventario"
	EquipmentStateDecommissioned     = "descomisionado"
	EquipmentStateTransferPending    = "transferencia_pendiente"
)

type Equipment struct {
	UUID              string      `json:"uuid"`
	TechnicalCode     string      `json:"technical_code"`
	Name              string      `json:"name"`
	SerialNumber      string      `json:"serial_number"`
	Description       null.String `json:"description"`
	State             string      `json:"state"`
	DependsOn         null.String `json:"depends_on"`
	BrandID           int         `json:"brand_id"`
	TechnicalLocation null.String `json:"technical_location"`
	TransferLocation  null.String `json:"transfer_location"`
	Timestamps
}
