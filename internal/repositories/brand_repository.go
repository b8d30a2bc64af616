package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var BrandDescriptor = Descriptor{
	Table:         "brands",
	Name:          "Brand",
	Columns:       []string{"id", "name"},
	InsertColumns: []string{"name"},
	PK:            []string{"id"},
}

var brandMapper = RowMapper[entities.Brand]{
	ScanDest: func(b *entities.Brand) []interface{} {
		return []interface{}{&b.ID, &b.Name}
	},
	InsertValues: func(b entities.Brand) []interface{} {
		return []interface{}{b.Name}
	},
}

func NewBrandRepository(storage *pgxpool.Pool) *CrudRepository[entities.Brand] {
	return NewCrudRepository(storage, BrandDescriptor, brandMapper)
}
