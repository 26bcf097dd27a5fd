package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/pkg/database"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Store *database.Store
}

// Conn returns the live database handle. Always resolved through the store so
// repositories keep working across a restore or reset.
func (r *BaseRepository) Conn() *sql.DB {
	return r.Store.Conn()
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.Conn().BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}
