package entities

import "github.com/aarondl/null/v8"

// Technician extends a User row; the two share the same UUID and the
// technician row is removed when the user is (cascade at storage level).
type Technician struct {
	UUID            string   `json:"uuid"`
	PersonalID      string   `json:"personal_id"`
	Contact         string   `json:"contact"`
	Speciality      string   `json:"speciality"`
	TechnicalTeamID null.Int `json:"technical_team_id"`
	Timestamps
}
