// Package dbx provides a tiny DB abstraction shared by repositories.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
