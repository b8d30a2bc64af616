package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var ReportOriginDescriptor = Descriptor{
	Table:         "report_origins",
	Name:          "ReportOrigin",
	Columns:       []string{"id", "email_remitent", "gema_creator", "source", "description", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"email_remitent", "gema_creator", "source", "description"},
	PK:            []string{"id"},
}

var reportOriginMapper = RowMapper[entities.ReportOrigin]{
	ScanDest: func(o *entities.ReportOrigin) []interface{} {
		return []interface{}{&o.ID, &o.EmailRemitent, &o.GemaCreator, &o.Source, &o.Description, &o.UpdatedAt, &o.CreatedAt, &o.DeletedAt}
	},
	InsertValues: func(o entities.ReportOrigin) []interface{} {
		return []interface{}{o.EmailRemitent, o.GemaCreator, o.Source, o.Description}
	},
}

func NewReportOriginRepository(storage *pgxpool.Pool) *CrudRepository[entities.ReportOrigin] {
	return NewCrudRepository(storage, ReportOriginDescriptor, reportOriginMapper)
}
