package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var ReportUpdateDescriptor = Descriptor{
	Table:         "report_updates",
	Name:          "ReportUpdate",
	Columns:       []string{"id", "description", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"description"},
	PK:            []string{"id"},
}

var reportUpdateMapper = RowMapper[entities.ReportUpdate]{
	ScanDest: func(u *entities.ReportUpdate) []interface{} {
		return []interface{}{&u.ID, &u.Description, &u.UpdatedAt, &u.CreatedAt, &u.DeletedAt}
	},
	InsertValues: func(u entities.ReportUpdate) []interface{} {
		return []interface{}{u.Description}
	},
}

func NewReportUpdateRepository(storage *pgxpool.Pool) *CrudRepository[entities.ReportUpdate] {
	return NewCrudRepository(storage, ReportUpdateDescriptor, reportUpdateMapper)
}
