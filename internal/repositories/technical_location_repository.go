package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var TechnicalLocationDescriptor = Descriptor{
	Table:         "technical_locations",
	Name:          "TechnicalLocation",
	Columns:       []string{"technical_code", "name", "type_id", "parent_technical_code"},
	InsertColumns: []string{"technical_code", "name", "type_id", "parent_technical_code"},
	PK:            []string{"technical_code"},
}

var technicalLocationMapper = RowMapper[entities.TechnicalLocation]{
	ScanDest: func(l *entities.TechnicalLocation) []interface{} {
		return []interface{}{&l.TechnicalCode, &l.Name, &l.TypeID, &l.ParentTechnicalCode}
	},
	InsertValues: func(l entities.TechnicalLocation) []interface{} {
		return []interface{}{l.TechnicalCode, l.Name, l.TypeID, l.ParentTechnicalCode}
	},
}

type TechnicalLocationRepositoryInterface interface {
	CrudRepositoryInterface[entities.TechnicalLocation]
	GetChildren(ctx context.Context, technicalCode string) ([]entities.TechnicalLocation, error)
}

// TechnicalLocationRepository layers tree navigation on top of the generic
// engine for the self-referential location table.
type TechnicalLocationRepository struct {
	*CrudRepository[entities.TechnicalLocation]
	storage *pgxpool.Pool
}

func NewTechnicalLocationRepository(storage *pgxpool.Pool) *TechnicalLocationRepository {
	return &TechnicalLocationRepository{
		CrudRepository: NewCrudRepository(storage, TechnicalLocationDescriptor, technicalLocationMapper),
		storage:        storage,
	}
}

// GetChildren lists the locations whose parent is the given code. The row
// carrying the code itself is excluded so a root stored as its own parent
// never shows up as its own child.
func (r *TechnicalLocationRepository) GetChildren(ctx context.Context, technicalCode string) ([]entities.TechnicalLocation, error) {
	query, args, err := psql.
		Select(TechnicalLocationDescriptor.Columns...).
		From(TechnicalLocationDescriptor.Table).
		Where(sq.And{
			sq.Eq{"parent_technical_code": technicalCode},
			sq.NotEq{"technical_code": technicalCode},
		}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStorageError(err)
	}
	defer rows.Close()

	children := make([]entities.TechnicalLocation, 0, 10)
	for rows.Next() {
		var location entities.TechnicalLocation
		if err := rows.Scan(technicalLocationMapper.ScanDest(&location)...); err != nil {
			return nil, err
		}
		children = append(children, location)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStorageError(err)
	}
	return children, nil
}
