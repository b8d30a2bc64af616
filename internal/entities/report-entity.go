package entities

import "github.com/aarondl/null/v8"

type Report struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Priority    string      `json:"priority"`
	State       string      `json:"state"`
	Type        string      `json:"type"`
	Notes       null.String `json:"notes"`
	Timestamps
}
