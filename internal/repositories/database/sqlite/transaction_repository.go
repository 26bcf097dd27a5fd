package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/internal/core/domain"
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/internal/models"
	"github.com/trovehq/trove-backend/internal/utils/mapping"
	"github.com/trovehq/trove-backend/internal/utils/pagination"
	"github.com/trovehq/trove-backend/pkg/database"
)

// SQLiteTransactionRepository persists transactions in the SQLite store.
// Every write pairs the row mutation with its balance adjustment inside one
// store transaction. Balance writes go through the account repository so the
// arithmetic lives in one place.
type SQLiteTransactionRepository struct {
	BaseRepository
	accounts *SQLiteAccountRepository
}

// newSQLiteTransactionRepository creates a new repository for transaction data.
func newSQLiteTransactionRepository(store *database.Store, accounts *SQLiteAccountRepository) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{BaseRepository{Store: store}, accounts}
}

// Ensure SQLiteTransactionRepository implements the repository ports
var _ portsrepo.TransactionRepositoryWithTx = (*SQLiteTransactionRepository)(nil)

const transactionColumns = "transaction_id, name, type, amount, category, datetime, account_id, created_at, updated_at"

// scanTransaction scans one transactions row, parsing the TEXT amount column
// into a decimal.
func scanTransaction(row interface{ Scan(...any) error }) (models.Transaction, error) {
	var m models.Transaction
	var amountStr string
	err := row.Scan(
		&m.TransactionID,
		&m.Name,
		&m.Type,
		&amountStr,
		&m.Category,
		&m.Datetime,
		&m.AccountID,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Transaction{}, err
	}
	if m.Amount, err = decimal.NewFromString(amountStr); err != nil {
		return models.Transaction{}, fmt.Errorf("corrupt amount for transaction %s: %w", m.TransactionID, err)
	}
	return m, nil
}

// SaveTransaction inserts a transaction row and applies balanceDelta to its
// owning account in the same store transaction.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, query,
		m.TransactionID,
		m.Name,
		m.Type,
		m.Amount.String(),
		m.Category,
		m.Datetime,
		m.AccountID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
		}
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}

	if err := adjustBalanceInTx(ctx, tx, m.AccountID, balanceDelta, m.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a single transaction by its ID.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = ?;`
	row := r.Conn().QueryRowContext(ctx, query, transactionID)

	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves a filtered page ordered by (datetime DESC,
// transaction_id DESC) using token-based pagination. The returned token is
// nil when the page is the last one.
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		return nil, nil, fmt.Errorf("%w: page limit must be positive, got %d", apperrors.ErrValidation, limit)
	}

	var conditions []string
	var args []any

	if filter.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, string(*filter.Type))
	}
	if filter.AccountID != nil {
		conditions = append(conditions, "account_id = ?")
		args = append(args, *filter.AccountID)
	}
	if filter.From != nil {
		conditions = append(conditions, "datetime >= ?")
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		conditions = append(conditions, "datetime <= ?")
		args = append(args, *filter.To)
	}
	if nextToken != nil && *nextToken != "" {
		tokenTime, tokenID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, "(datetime < ? OR (datetime = ? AND transaction_id < ?))")
		args = append(args, tokenTime, tokenTime, tokenID)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// Fetch one extra row to learn whether another page exists.
	query += " ORDER BY datetime DESC, transaction_id DESC LIMIT ?;"
	args = append(args, limit+1)

	rows, err := r.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.Datetime, last.TransactionID)
		newToken = &token
	}

	return mapping.ToDomainTransactionSlice(txns), newToken, nil
}

// SearchTransactionsByName retrieves transactions whose name contains the
// query, reverse-chronological.
func (r *SQLiteTransactionRepository) SearchTransactionsByName(ctx context.Context, query string) ([]domain.Transaction, error) {
	sqlQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE name LIKE ?
		ORDER BY datetime DESC, transaction_id DESC;
	`
	rows, err := r.Conn().QueryContext(ctx, sqlQuery, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search transactions: %w", err)
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

// CountTransactionsByAccount returns how many transactions an account owns.
func (r *SQLiteTransactionRepository) CountTransactionsByAccount(ctx context.Context, accountID string) (int, error) {
	var count int
	err := r.Conn().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE account_id = ?;`, accountID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions for account %s: %w", accountID, err)
	}
	return count, nil
}

// SumAmountByTypeForAccount totals one transaction type for an account. The
// amounts are summed in Go to keep decimal exactness.
func (r *SQLiteTransactionRepository) SumAmountByTypeForAccount(ctx context.Context, accountID string, txnType domain.TransactionType) (decimal.Decimal, error) {
	rows, err := r.Conn().QueryContext(ctx,
		`SELECT amount FROM transactions WHERE account_id = ? AND type = ?;`,
		accountID, string(txnType),
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var amountStr string
		if err := rows.Scan(&amountStr); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan amount: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt amount in account %s: %w", accountID, err)
		}
		total = total.Add(amount)
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed iterating amounts: %w", err)
	}
	return total, nil
}

// UpdateTransaction rewrites a transaction row and applies the per-account
// balance deltas in the same store transaction.
func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions
		SET name = ?, type = ?, amount = ?, category = ?, datetime = ?, account_id = ?, updated_at = ?
		WHERE transaction_id = ?;
	`
	result, err := tx.ExecContext(ctx, query,
		m.Name,
		m.Type,
		m.Amount.String(),
		m.Category,
		m.Datetime,
		m.AccountID,
		m.UpdatedAt,
		m.TransactionID,
	)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
		}
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result for transaction %s: %w", m.TransactionID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}

	if err := r.accounts.AdjustBalancesInTx(ctx, tx, balanceChanges, m.UpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction row and applies balanceDelta (the
// reversal of its original effect) to accountID in the same store
// transaction.
func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, accountID string, balanceDelta decimal.Decimal, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	result, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result for transaction %s: %w", transactionID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}

	if err := adjustBalanceInTx(ctx, tx, accountID, balanceDelta, now); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}
