package repositories

import (
	"context"
	"time"

	"github.com/trovehq/trove-backend/internal/core/domain"
)

// ReportingRepository defines read-only aggregation queries over the store.
type ReportingRepository interface {
	// GetBalanceSummary sums cached balances across all accounts, total and
	// per account type. It trusts the cached values; it does not recompute
	// from transaction history.
	GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error)

	// ListTransactionsForRange retrieves all transactions within the optional
	// date bounds, descending by datetime. Nil bounds are open-ended.
	ListTransactionsForRange(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error)
}
