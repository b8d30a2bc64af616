package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var ReportDescriptor = Descriptor{
	Table:         "reports",
	Name:          "Report",
	Columns:       []string{"id", "title", "description", "priority", "state", "type", "notes", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"title", "description", "priority", "state", "type", "notes"},
	PK:            []string{"id"},
}

var reportMapper = RowMapper[entities.Report]{
	ScanDest: func(r *entities.Report) []interface{} {
		return []interface{}{&r.ID, &r.Title, &r.Description, &r.Priority, &r.State, &r.Type, &r.Notes, &r.UpdatedAt, &r.CreatedAt, &r.DeletedAt}
	},
	InsertValues: func(r entities.Report) []interface{} {
		return []interface{}{r.Title, r.Description, r.Priority, r.State, r.Type, r.Notes}
	},
}

func NewReportRepository(storage *pgxpool.Pool) *CrudRepository[entities.Report] {
	return NewCrudRepository(storage, ReportDescriptor, reportMapper)
}
