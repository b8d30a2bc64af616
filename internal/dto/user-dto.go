package dto

import (
	"gema-backend/internal/entities"

	"github.com/google/uuid"
)

type CreateUserDTO struct {
	UUID  *string `json:"uuid" validate:"omitempty,uuid4"`
	Name  string  `json:"name" validate:"required,min=1"`
	Email string  `json:"email" validate:"required,email"`
	Role  string  `json:"role" validate:"omitempty,oneof=user technician coordinator admin"`
}

// Updates are validated against the full schema, same as creates.
type UpdateUserDTO = CreateUserDTO

func (d CreateUserDTO) ToEntity() entities.User {
	user := entities.User{
		Name:  d.Name,
		Email: d.Email,
		Role:  d.Role,
	}
	if d.UUID != nil {
		user.UUID = *d.UUID
	} else {
		user.UUID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	return user
}
