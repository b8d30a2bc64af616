package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var TechnicalLocationTypeDescriptor = Descriptor{
	Table:         "technical_location_types",
	Name:          "TechnicalLocationType",
	Columns:       []string{"id", "name", "description", "name_template", "code_template"},
	InsertColumns: []string{"name", "description", "name_template", "code_template"},
	PK:            []string{"id"},
}

var technicalLocationTypeMapper = RowMapper[entities.TechnicalLocationType]{
	ScanDest: func(t *entities.TechnicalLocationType) []interface{} {
		return []interface{}{&t.ID, &t.Name, &t.Description, &t.NameTemplate, &t.CodeTemplate}
	},
	InsertValues: func(t entities.TechnicalLocationType) []interface{} {
		return []interface{}{t.Name, t.Description, t.NameTemplate, t.CodeTemplate}
	},
}

func NewTechnicalLocationTypeRepository(storage *pgxpool.Pool) *CrudRepository[entities.TechnicalLocationType] {
	return NewCrudRepository(storage, TechnicalLocationTypeDescriptor, technicalLocationTypeMapper)
}
