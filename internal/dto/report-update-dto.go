package dto

import "gema-backend/internal/entities"

type CreateReportUpdateDTO struct {
	Description string `json:"description" validate:"required,min=1"`
}

type UpdateReportUpdateDTO = CreateReportUpdateDTO

func (d CreateReportUpdateDTO) ToEntity() entities.ReportUpdate {
	return entities.ReportUpdate{Description: d.Description}
}
