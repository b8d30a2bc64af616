package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var TechnicianDescriptor = Descriptor{
	Table:         "technicians",
	Name:          "Technician",
	Columns:       []string{"uuid", "personal_id", "contact", "speciality", "technical_team_id", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"uuid", "personal_id", "contact", "speciality", "technical_team_id"},
	PK:            []string{"uuid"},
}

var technicianMapper = RowMapper[entities.Technician]{
	ScanDest: func(t *entities.Technician) []interface{} {
		return []interface{}{&t.UUID, &t.PersonalID, &t.Contact, &t.Speciality, &t.TechnicalTeamID, &t.UpdatedAt, &t.CreatedAt, &t.DeletedAt}
	},
	InsertValues: func(t entities.Technician) []interface{} {
		return []interface{}{t.UUID, t.PersonalID, t.Contact, t.Speciality, t.TechnicalTeamID}
	},
}

func NewTechnicianRepository(storage *pgxpool.Pool) *CrudRepository[entities.Technician] {
	return NewCrudRepository(storage, TechnicianDescriptor, technicianMapper)
}
