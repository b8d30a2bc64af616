package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Timestamps is the common audit block carried by most tables. created_at is
// storage-assigned, updated_at is set on update, deleted_at stays unused until
// a row is removed through storage-side tooling.
type Timestamps struct {
	UpdatedAt null.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
	DeletedAt null.Time `json:"deleted_at"`
}
