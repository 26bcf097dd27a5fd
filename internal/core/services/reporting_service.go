package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
)

// ReportingService builds read-only aggregate views. Decimal arithmetic stays
// in Go; the repository only fetches rows and cached balances.
type ReportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(repo portsrepo.ReportingRepository) *ReportingService {
	return &ReportingService{reportingRepo: repo}
}

// GetBalanceSummary returns the total cached balance across all accounts plus
// per-type subtotals.
func (s *ReportingService) GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	summary, err := s.reportingRepo.GetBalanceSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to build balance summary")
		return nil, fmt.Errorf("failed to build balance summary: %w", err)
	}
	return summary, nil
}

// GetActivityReport groups transactions in the optional window by calendar
// day, newest day first, with per-day earning and expense totals.
func (s *ReportingService) GetActivityReport(ctx context.Context, from, to *time.Time) ([]domain.DayGroup, error) {
	txns, err := s.reportingRepo.ListTransactionsForRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for activity report")
		return nil, fmt.Errorf("failed to build activity report: %w", err)
	}

	// Rows arrive in descending datetime order, so appending to the group
	// list on each new day preserves newest-day-first ordering.
	groups := make([]domain.DayGroup, 0)
	index := make(map[string]int)
	for _, txn := range txns {
		day := time.Date(txn.Datetime.Year(), txn.Datetime.Month(), txn.Datetime.Day(), 0, 0, 0, 0, txn.Datetime.Location())
		key := day.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			groups = append(groups, domain.DayGroup{
				Date:         day,
				TotalEarning: decimal.Zero,
				TotalExpense: decimal.Zero,
			})
			i = len(groups) - 1
			index[key] = i
		}
		groups[i].Transactions = append(groups[i].Transactions, txn)
		switch txn.Type {
		case domain.Earning:
			groups[i].TotalEarning = groups[i].TotalEarning.Add(txn.Amount)
		case domain.Expense:
			groups[i].TotalExpense = groups[i].TotalExpense.Add(txn.Amount)
		}
	}

	return groups, nil
}
