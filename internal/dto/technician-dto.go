package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type CreateTechnicianDTO struct {
	UUID            *string `json:"uuid" validate:"omitempty,uuid4"`
	PersonalID      string  `json:"personal_id" validate:"required,min=1"`
	Contact         string  `json:"contact" validate:"required,min=1"`
	Speciality      string  `json:"speciality" validate:"required,oneof=Electricidad Refrigeracion Iluminacion Pintura Protocolo IT"`
	TechnicalTeamID *int    `json:"technical_team_id" validate:"omitempty,gt=0"`
}

type UpdateTechnicianDTO = CreateTechnicianDTO

func (d CreateTechnicianDTO) ToEntity() entities.Technician {
	technician := entities.Technician{
		PersonalID:      d.PersonalID,
		Contact:         d.Contact,
		Speciality:      d.Speciality,
		TechnicalTeamID: null.IntFromPtr(d.TechnicalTeamID),
	}
	if d.UUID != nil {
		technician.UUID = *d.UUID
	} else {
		technician.UUID = uuid.NewString()
	}
	return technician
}
