package services

import (
	"context"
	"time"

	"github.com/trovehq/trove-backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only aggregate views over the ledger.
type ReportingSvcFacade interface {
	// GetBalanceSummary returns the total balance across all accounts plus
	// per-type subtotals.
	GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error)

	// GetActivityReport returns transactions in the optional date window
	// grouped by calendar day, newest day first, with per-day totals.
	GetActivityReport(ctx context.Context, from, to *time.Time) ([]domain.DayGroup, error)
}
