package entities

import "github.com/aarondl/null/v8"

type TechnicalTeam struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Speciality null.String `json:"speciality"`
	LeaderUUID null.String `json:"leader_uuid"`
	Timestamps
}
