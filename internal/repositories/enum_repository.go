package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "gema-backend/pkg/errors"
)

// enumTypes whitelists the listable enum types; the key is the API name, the
// value the Postgres type interpolated into the query.
var enumTypes = map[string]string{
	"roles":                   "user_role",
	"technician-specialities": "technician_speciality",
	"equipment-states":        "equipment_state",
	"report-origin-sources":   "report_origin_source",
	"report-priorities":       "report_priority",
	"report-types":            "report_type",
	"report-states":           "report_state",
}

type EnumRepositoryInterface interface {
	ListValues(ctx context.Context, name string) ([]string, error)
}

type EnumRepository struct {
	storage *pgxpool.Pool
}

func NewEnumRepository(storage *pgxpool.Pool) *EnumRepository {
	return &EnumRepository{storage: storage}
}

// ListValues returns the declared values of a Postgres enum type in
// declaration order.
func (r *EnumRepository) ListValues(ctx context.Context, name string) ([]string, error) {
	pgType, ok := enumTypes[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown enum %q", apperrors.ErrNotFound, name)
	}

	query := fmt.Sprintf(`SELECT unnest(enum_range(NULL::%s))::text AS value`, pgType)

	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, mapStorageError(err)
	}
	defer rows.Close()

	values := make([]string, 0, 8)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStorageError(err)
	}
	return values, nil
}
