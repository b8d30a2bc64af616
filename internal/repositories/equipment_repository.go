package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
	apperrors "gema-backend/pkg/errors"
)

var EquipmentDescriptor = Descriptor{
	Table: "equipment",
	Name:  "Equipment",
	Columns: []string{
		"uuid", "technical_code", "name", "serial_number", "description", "state",
		"depends_on", "brand_id", "technical_location", "transfer_location",
		"updated_at", "created_at", "deleted_at",
	},
	InsertColumns: []string{
		"uuid", "technical_code", "name", "serial_number", "description", "state",
		"depends_on", "brand_id", "technical_location", "transfer_location",
	},
	PK: []string{"uuid"},
}

var equipmentMapper = RowMapper[entities.Equipment]{
	ScanDest: func(e *entities.Equipment) []interface{} {
		return []interface{}{
			&e.UUID, &e.TechnicalCode, &e.Name, &e.SerialNumber, &e.Description, &e.State,
			&e.DependsOn, &e.BrandID, &e.TechnicalLocation, &e.TransferLocation,
			&e.UpdatedAt, &e.CreatedAt, &e.DeletedAt,
		}
	},
	InsertValues: func(e entities.Equipment) []interface{} {
		return []interface{}{
			e.UUID, e.TechnicalCode, e.Name, e.SerialNumber, e.Description, e.State,
			e.DependsOn, e.BrandID, e.TechnicalLocation, e.TransferLocation,
		}
	},
}

type EquipmentRepositoryInterface interface {
	CrudRepositoryInterface[entities.Equipment]
	SetLocationField(ctx context.Context, equipmentUUID string, column string, locationCode string) error
	ListOperationalLocations(ctx context.Context, equipmentUUID string) ([]string, error)
}

// EquipmentRepository adds the single-valued location column writes and the
// join-table listing on top of the generic engine.
type EquipmentRepository struct {
	*CrudRepository[entities.Equipment]
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) *EquipmentRepository {
	return &EquipmentRepository{
		CrudRepository: NewCrudRepository(storage, EquipmentDescriptor, equipmentMapper),
		storage:        storage,
	}
}

// SetLocationField overwrites one of the equipment's location reference
// columns (technical_location or transfer_location). Repeating the same write
// is a no-op beyond the row's updated_at.
func (r *EquipmentRepository) SetLocationField(ctx context.Context, equipmentUUID string, column string, locationCode string) error {
	query, args, err := psql.
		Update(EquipmentDescriptor.Table).
		Set(column, locationCode).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"uuid": equipmentUUID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return mapStorageError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EquipmentRepository) ListOperationalLocations(ctx context.Context, equipmentUUID string) ([]string, error) {
	query, args, err := psql.
		Select("location_technical_code").
		From(EquipmentOperationalLocationDescriptor.Table).
		Where(sq.Eq{"equipment_uuid": equipmentUUID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStorageError(err)
	}
	defer rows.Close()

	codes := make([]string, 0, 10)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStorageError(err)
	}
	return codes, nil
}
