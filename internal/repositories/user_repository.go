package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"gema-backend/internal/entities"
)

var UserDescriptor = Descriptor{
	Table:         "users",
	Name:          "User",
	Columns:       []string{"uuid", "name", "email", "role", "updated_at", "created_at", "deleted_at"},
	InsertColumns: []string{"uuid", "name", "email", "role"},
	PK:            []string{"uuid"},
}

var userMapper = RowMapper[entities.User]{
	ScanDest: func(u *entities.User) []interface{} {
		return []interface{}{&u.UUID, &u.Name, &u.Email, &u.Role, &u.UpdatedAt, &u.CreatedAt, &u.DeletedAt}
	},
	InsertValues: func(u entities.User) []interface{} {
		return []interface{}{u.UUID, u.Name, u.Email, u.Role}
	},
}

func NewUserRepository(storage *pgxpool.Pool) *CrudRepository[entities.User] {
	return NewCrudRepository(storage, UserDescriptor, userMapper)
}
