package dto

import "gema-backend/internal/entities"

type CreateBrandDTO struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateBrandDTO = CreateBrandDTO

func (d CreateBrandDTO) ToEntity() entities.Brand {
	return entities.Brand{Name: d.Name}
}
