package repositories

import (
	"context"
	"database/sql"
)

// TransactionManager defines methods for store transaction management
type TransactionManager interface {
	// Begin starts a new store transaction
	Begin(ctx context.Context) (*sql.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx *sql.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx *sql.Tx) error
}
