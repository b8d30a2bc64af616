package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "gema-backend/pkg/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Descriptor declares the storage shape of one entity: its table, the full
// column list (select/returning order), the subset supplied by the caller on
// insert and update, and the ordered primary key columns. A PK of length > 1
// is a composite key.
type Descriptor struct {
	Table         string
	Name          string
	Columns       []string
	InsertColumns []string
	PK            []string
}

// PKWhere builds the equality conjunction for a key-value map. The map must
// cover the descriptor's key columns exactly: one equality predicate for a
// simple key, an AND of per-field predicates in declaration order otherwise.
func (d Descriptor) PKWhere(pk map[string]interface{}) (sq.Sqlizer, error) {
	if len(pk) != len(d.PK) {
		return nil, fmt.Errorf("%w: %s key needs fields %v", apperrors.ErrBadRequest, d.Name, d.PK)
	}
	conj := make(sq.And, 0, len(d.PK))
	for _, col := range d.PK {
		value, ok := pk[col]
		if !ok {
			return nil, fmt.Errorf("%w: %s key is missing field %q", apperrors.ErrBadRequest, d.Name, col)
		}
		conj = append(conj, sq.Eq{col: value})
	}
	if len(conj) == 1 {
		return conj[0], nil
	}
	return conj, nil
}

func (d Descriptor) isPKColumn(name string) bool {
	for _, col := range d.PK {
		if col == name {
			return true
		}
	}
	return false
}

func (d Descriptor) hasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// RowMapper binds an entity type to the descriptor's columns without
// reflection: ScanDest yields scan targets aligned with Columns, InsertValues
// yields the values aligned with InsertColumns.
type RowMapper[T any] struct {
	ScanDest     func(e *T) []interface{}
	InsertValues func(e T) []interface{}
}

type CrudRepositoryInterface[T any] interface {
	Insert(ctx context.Context, entity T) (T, error)
	GetByPK(ctx context.Context, pk map[string]interface{}) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, pk map[string]interface{}, entity T) (T, error)
	Delete(ctx context.Context, pk map[string]interface{}) (T, error)
}

// CrudRepository is the generic engine behind every entity repository. All
// SQL goes through squirrel and the shared pgx pool; absence is reported as
// apperrors.ErrNotFound, never invented rows or panics.
type CrudRepository[T any] struct {
	storage *pgxpool.Pool
	desc    Descriptor
	mapper  RowMapper[T]
}

func NewCrudRepository[T any](storage *pgxpool.Pool, desc Descriptor, mapper RowMapper[T]) *CrudRepository[T] {
	return &CrudRepository[T]{
		storage: storage,
		desc:    desc,
		mapper:  mapper,
	}
}

func (r *CrudRepository[T]) Descriptor() Descriptor {
	return r.desc
}

func (r *CrudRepository[T]) returning() string {
	return "RETURNING " + strings.Join(r.desc.Columns, ", ")
}

func (r *CrudRepository[T]) Insert(ctx context.Context, entity T) (T, error) {
	var created T

	query, args, err := psql.
		Insert(r.desc.Table).
		Columns(r.desc.InsertColumns...).
		Values(r.mapper.InsertValues(entity)...).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return created, err
	}

	row := r.storage.QueryRow(ctx, query, args...)
	if err := row.Scan(r.mapper.ScanDest(&created)...); err != nil {
		return created, mapStorageError(err)
	}
	return created, nil
}

func (r *CrudRepository[T]) GetByPK(ctx context.Context, pk map[string]interface{}) (T, error) {
	var found T

	where, err := r.desc.PKWhere(pk)
	if err != nil {
		return found, err
	}

	query, args, err := psql.
		Select(r.desc.Columns...).
		From(r.desc.Table).
		Where(where).
		ToSql()
	if err != nil {
		return found, err
	}

	row := r.storage.QueryRow(ctx, query, args...)
	if err := row.Scan(r.mapper.ScanDest(&found)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return found, apperrors.ErrNotFound
		}
		return found, mapStorageError(err)
	}
	return found, nil
}

func (r *CrudRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	query, args, err := psql.
		Select(r.desc.Columns...).
		From(r.desc.Table).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, mapStorageError(err)
	}
	defer rows.Close()

	result := make([]T, 0, 20)
	for rows.Next() {
		var entity T
		if err := rows.Scan(r.mapper.ScanDest(&entity)...); err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStorageError(err)
	}
	return result, nil
}

func (r *CrudRepository[T]) Update(ctx context.Context, pk map[string]interface{}, entity T) (T, error) {
	var updated T

	where, err := r.desc.PKWhere(pk)
	if err != nil {
		return updated, err
	}

	// The row keeps its identity: key columns are located by the WHERE
	// clause, never rewritten by the SET list.
	builder := psql.Update(r.desc.Table)
	values := r.mapper.InsertValues(entity)
	for i, col := range r.desc.InsertColumns {
		if r.desc.isPKColumn(col) {
			continue
		}
		builder = builder.Set(col, values[i])
	}
	if r.desc.hasColumn("updated_at") {
		builder = builder.Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))
	}

	query, args, err := builder.Where(where).Suffix(r.returning()).ToSql()
	if err != nil {
		return updated, err
	}

	row := r.storage.QueryRow(ctx, query, args...)
	if err := row.Scan(r.mapper.ScanDest(&updated)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return updated, apperrors.ErrNotFound
		}
		return updated, mapStorageError(err)
	}
	return updated, nil
}

func (r *CrudRepository[T]) Delete(ctx context.Context, pk map[string]interface{}) (T, error) {
	var deleted T

	where, err := r.desc.PKWhere(pk)
	if err != nil {
		return deleted, err
	}

	query, args, err := psql.
		Delete(r.desc.Table).
		Where(where).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return deleted, err
	}

	row := r.storage.QueryRow(ctx, query, args...)
	if err := row.Scan(r.mapper.ScanDest(&deleted)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return deleted, apperrors.ErrNotFound
		}
		return deleted, mapStorageError(err)
	}
	return deleted, nil
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapStorageError turns constraint violations into caller-recoverable errors;
// everything else stays a storage failure surfaced as a server error.
func mapStorageError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: referenced record does not exist (%s)", apperrors.ErrBadRequest, pgErr.ConstraintName)
		}
	}
	return err
}
