package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var TechnicalTeamDescriptor = Descriptor{
	Table:         "technical_teams",
	Name:          "TechnicalTeam",
	Columns:       []string{"id", "name", "speciality", "leader_uuid", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"name", "speciality", "leader_uuid"},
	PK:            []string{"id"},
}

var technicalTeamMapper = RowMapper[entities.TechnicalTeam]{
	ScanDest: func(t *entities.TechnicalTeam) []interface{} {
		return []interface{}{&t.ID, &t.Name, &t.Speciality, &t.LeaderUUID, &t.UpdatedAt, &t.CreatedAt, &t.DeletedAt}
	},
	InsertValues: func(t entities.TechnicalTeam) []interface{} {
		return []interface{}{t.Name, t.Speciality, t.LeaderUUID}
	},
}

func NewTechnicalTeamRepository(storage *pgxpool.Pool) *CrudRepository[entities.TechnicalTeam] {
	return NewCrudRepository(storage, TechnicalTeamDescriptor, technicalTeamMapper)
}
