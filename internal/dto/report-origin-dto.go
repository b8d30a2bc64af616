package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateReportOriginDTO struct {
	EmailRemitent *string `json:"email_remitent" validate:"omitempty,email"`
	GemaCreator   *string `json:"gema_creator" validate:"omitempty,uuid4"`
	Source        string  `json:"source" validate:"required,oneof=email managementSystem chat GEMA"`
	Description   *string `json:"description" validate:"omitempty"`
}

type UpdateReportOriginDTO = CreateReportOriginDTO

func (d CreateReportOriginDTO) ToEntity() entities.ReportOrigin {
	return entities.ReportOrigin{
		EmailRemitent: null.StringFromPtr(d.EmailRemitent),
		GemaCreator:   null.StringFromPtr(d.GemaCreator),
		Source:        d.Source,
		Description:   null.StringFromPtr(d.Description),
	}
}
