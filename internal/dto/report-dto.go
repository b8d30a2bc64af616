package dto

import (
	"gema-backend/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateReportDTO struct {
	Title       string  `json:"title" validate:"required,min=1"`
	Description string  `json:"description" validate:"required,min=1"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=high medium low"`
	State       string  `json:"state" validate:"omitempty,oneof=pending programmed in_progress solved cancelled"`
	Type        string  `json:"type" validate:"omitempty,oneof=preventive active"`
	Notes       *string `json:"notes" validate:"omitempty"`
}

type UpdateReportDTO = CreateReportDTO

func (d CreateReportDTO) ToEntity() entities.Report {
	report := entities.Report{
		Title:       d.Title,
		Description: d.Description,
		Priority:    d.Priority,
		State:       d.State,
		Type:        d.Type,
		Notes:       null.StringFromPtr(d.Notes),
	}
	if report.Priority == "" {
		report.Priority = "medium"
	}
	if report.State == "" {
		report.State = "pending"
	}
	if report.Type == "" {
		report.Type = "preventive"
	}
	return report
}
