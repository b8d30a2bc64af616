package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateTechnicalLocationTypeDTO struct {
	Name         string  `json:"name" validate:"required,min=3,max=50"`
	Description  *string `json:"description" validate:"omitempty"`
	NameTemplate string  `json:"name_template" validate:"required,min=3,max=50"`
	CodeTemplate string  `json:"code_template" validate:"required,min=3,max=50"`
}

type UpdateTechnicalLocationTypeDTO = CreateTechnicalLocationTypeDTO

func (d CreateTechnicalLocationTypeDTO) ToEntity() entities.TechnicalLocationType {
	return entities.TechnicalLocationType{
		Name:         d.Name,
		Description:  null.StringFromPtr(d.Description),
		NameTemplate: d.NameTemplate,
		CodeTemplate: d.CodeTemplate,
	}
}
