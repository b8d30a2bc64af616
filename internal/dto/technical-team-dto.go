package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateTechnicalTeamDTO struct {
	Name       string  `json:"name" validate:"required,min=1"`
	Speciality *string `json:"speciality" validate:"omitempty,oneof=Electricidad Refrigeracion Iluminacion Pintura Protocolo IT"`
	LeaderUUID *string `json:"leader_uuid" validate:"omitempty,uuid4"`
}

type UpdateTechnicalTeamDTO = CreateTechnicalTeamDTO

func (d CreateTechnicalTeamDTO) ToEntity() entities.TechnicalTeam {
	return entities.TechnicalTeam{
		Name:       d.Name,
		Speciality: null.StringFromPtr(d.Speciality),
		LeaderUUID: null.StringFromPtr(d.LeaderUUID),
	}
}
