package entities

import "github.com/aarondl/null/v8"

const (
	ReportOriginSourceEmail            = "email"
	ReportOriginSourceManagementSystem = "managementSystem"
	ReportOriginSourceChat             = "chat"
	ReportOriginSourceGema             = "GEMA"
)

type ReportOrigin struct {
	ID            int         `json:"id"`
	EmailRemitent null.String `json:"email_remitent"`
	GemaCreator   null.String `json:"gema_creator"`
	Source        string      `json:"source"`
	Description   null.String `json:"description"`
	Timestamps
}
