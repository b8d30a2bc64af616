package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateTechnicalLocationDTO struct {
	TechnicalCode       string  `json:"technical_code" validate:"required,min=1,technical_code"`
	Name                string  `json:"name" validate:"required,min=1"`
	TypeID              int     `json:"type_id" validate:"required,gt=0"`
	ParentTechnicalCode *string `json:"parent_technical_code" validate:"omitempty,min=1"`
}

type UpdateTechnicalLocationDTO = CreateTechnicalLocationDTO

// CreateDerivedLocationDTO is the payload for derived-code creation: the final
// technical code is "<parent_technical_code>-<code>".
type CreateDerivedLocationDTO struct {
	ParentTechnicalCode string `json:"parent_technical_code" validate:"required,min=1"`
	Code                string `json:"code" validate:"required,min=1"`
	Name                string `json:"name" validate:"required,min=1"`
	TypeID              int    `json:"type_id" validate:"required,gt=0"`
}

func (d CreateTechnicalLocationDTO) ToEntity() entities.TechnicalLocation {
	return entities.TechnicalLocation{
		TechnicalCode:       d.TechnicalCode,
		Name:                d.Name,
		TypeID:              d.TypeID,
		ParentTechnicalCode: null.StringFromPtr(d.ParentTechnicalCode),
	}
}
