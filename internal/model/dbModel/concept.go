package dbModel

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

type Concept struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Stocks    types.JSONText `db:"stocks"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt *time.Time     `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}
