package entities

import "github.com/aarondl/null/v8"

type TechnicalLocationType struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Description  null.String `json:"description"`
	NameTemplate string      `json:"name_template"`
	CodeTemplate string      `json:"code_template"`
}
