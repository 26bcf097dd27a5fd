package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/internal/models"
	"github.com/trovehq/trove-backend/internal/utils/mapping"
	"github.com/trovehq/trove-backend/pkg/database"
)

// SQLiteReportingRepository serves read-only aggregation queries. Decimal
// sums happen in Go; SQL never does arithmetic on the TEXT amount columns.
type SQLiteReportingRepository struct {
	BaseRepository
}

// newSQLiteReportingRepository creates a new reporting repository.
func newSQLiteReportingRepository(store *database.Store) *SQLiteReportingRepository {
	return &SQLiteReportingRepository{BaseRepository{Store: store}}
}

// Ensure SQLiteReportingRepository implements the reporting port
var _ portsrepo.ReportingRepository = (*SQLiteReportingRepository)(nil)

// GetBalanceSummary sums cached balances across all accounts, total and per
// account type.
func (r *SQLiteReportingRepository) GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	rows, err := r.Conn().QueryContext(ctx, `SELECT type, balance FROM accounts;`)
	if err != nil {
		return nil, fmt.Errorf("failed to read account balances: %w", err)
	}
	defer rows.Close()

	summary := &domain.BalanceSummary{
		TotalBalance: decimal.Zero,
		ByType:       make(map[domain.AccountType]decimal.Decimal),
	}
	for rows.Next() {
		var accountType string
		var balanceStr string
		if err := rows.Scan(&accountType, &balanceStr); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		balance, err := decimal.NewFromString(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt balance in summary: %w", err)
		}
		t := domain.AccountType(accountType)
		summary.TotalBalance = summary.TotalBalance.Add(balance)
		summary.ByType[t] = summary.ByType[t].Add(balance)
		summary.AccountCount++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating balance rows: %w", err)
	}
	return summary, nil
}

// ListTransactionsForRange retrieves all transactions within the optional
// date bounds, descending by datetime.
func (r *SQLiteReportingRepository) ListTransactionsForRange(ctx context.Context, from, to *time.Time) ([]domain.Transaction, error) {
	var conditions []string
	var args []any
	if from != nil {
		conditions = append(conditions, "datetime >= ?")
		args = append(args, *from)
	}
	if to != nil {
		conditions = append(conditions, "datetime <= ?")
		args = append(args, *to)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY datetime DESC, transaction_id DESC;"

	rows, err := r.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for range: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(txns), nil
}
