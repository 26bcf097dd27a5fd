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
	"github.com/trovehq/trove-backend/pkg/database"
)

// SQLiteAccountRepository persists accounts in the SQLite store.
type SQLiteAccountRepository struct {
	BaseRepository
}

// newSQLiteAccountRepository creates a new repository for account data.
func newSQLiteAccountRepository(store *database.Store) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{BaseRepository{Store: store}}
}

// Ensure SQLiteAccountRepository implements the repository ports
var _ portsrepo.AccountRepositoryWithTx = (*SQLiteAccountRepository)(nil)

const accountColumns = "account_id, provider, nickname, account_name, type, balance, initial_balance, created_at, updated_at"

// scanAccount scans one accounts row. Balance columns are TEXT; they are
// parsed into decimals here so every caller gets exact values.
func scanAccount(row interface{ Scan(...any) error }) (models.Account, error) {
	var m models.Account
	var nickname sql.NullString
	var balanceStr, initialBalanceStr string
	err := row.Scan(
		&m.AccountID,
		&m.Provider,
		&nickname,
		&m.AccountName,
		&m.Type,
		&balanceStr,
		&initialBalanceStr,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}
	m.Nickname = nickname.String
	if m.Balance, err = decimal.NewFromString(balanceStr); err != nil {
		return models.Account{}, fmt.Errorf("corrupt balance for account %s: %w", m.AccountID, err)
	}
	if m.InitialBalance, err = decimal.NewFromString(initialBalanceStr); err != nil {
		return models.Account{}, fmt.Errorf("corrupt initial balance for account %s: %w", m.AccountID, err)
	}
	return m, nil
}

// SaveAccount inserts a new account.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	var nickname sql.NullString
	if m.Nickname != "" {
		nickname = sql.NullString{String: m.Nickname, Valid: true}
	}

	_, err := r.Conn().ExecContext(ctx, query,
		m.AccountID,
		m.Provider,
		nickname,
		m.AccountName,
		m.Type,
		m.Balance.String(),
		m.InitialBalance.String(),
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a single account by its ID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = ?;`
	row := r.Conn().QueryRowContext(ctx, query, accountID)

	m, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by their IDs. Missing
// IDs are simply absent from the result map.
func (r *SQLiteAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	placeholders := strings.Repeat("?,", len(accountIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id IN (` + placeholders + `);`

	args := make([]any, len(accountIDs))
	for i, id := range accountIDs {
		args[i] = id
	}

	rows, err := r.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}
	return result, nil
}

// ListAccounts retrieves a page of accounts, newest-created first.
func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		ORDER BY created_at DESC, account_id DESC
		LIMIT ? OFFSET ?;
	`
	rows, err := r.Conn().QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// SearchAccounts retrieves accounts whose name, nickname, or provider
// contains the query, ordered by account name.
func (r *SQLiteAccountRepository) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	sqlQuery := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_name LIKE ? OR nickname LIKE ? OR provider LIKE ?
		ORDER BY account_name ASC;
	`
	pattern := "%" + query + "%"
	rows, err := r.Conn().QueryContext(ctx, sqlQuery, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// CountAccounts returns the total number of accounts.
func (r *SQLiteAccountRepository) CountAccounts(ctx context.Context) (int, error) {
	var count int
	err := r.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// UpdateAccount rewrites an account's descriptive fields. Balance columns are
// deliberately not touched here; they only move through the balance
// adjustment paths.
func (r *SQLiteAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	var nickname sql.NullString
	if m.Nickname != "" {
		nickname = sql.NullString{String: m.Nickname, Valid: true}
	}

	query := `
		UPDATE accounts
		SET provider = ?, nickname = ?, account_name = ?, type = ?, updated_at = ?
		WHERE account_id = ?;
	`
	result, err := r.Conn().ExecContext(ctx, query,
		m.Provider,
		nickname,
		m.AccountName,
		m.Type,
		m.UpdatedAt,
		m.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result for account %s: %w", m.AccountID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// DeleteAccount removes an account. Its transactions go with it via the
// schema's ON DELETE CASCADE.
func (r *SQLiteAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	result, err := r.Conn().ExecContext(ctx, `DELETE FROM accounts WHERE account_id = ?;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result for account %s: %w", accountID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// adjustBalanceInTx applies one signed delta to one account inside tx using
// read-modify-write so the decimal arithmetic stays in Go.
func adjustBalanceInTx(ctx context.Context, tx *sql.Tx, accountID string, delta decimal.Decimal, now time.Time) error {
	var balanceStr string
	err := tx.QueryRowContext(ctx,
		`SELECT balance FROM accounts WHERE account_id = ?;`, accountID,
	).Scan(&balanceStr)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	if err != nil {
		return fmt.Errorf("failed to read balance for account %s: %w", accountID, err)
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return fmt.Errorf("corrupt balance for account %s: %w", accountID, err)
	}

	newBalance := balance.Add(delta)
	_, err = tx.ExecContext(ctx,
		`UPDATE accounts SET balance = ?, updated_at = ? WHERE account_id = ?;`,
		newBalance.String(), now, accountID,
	)
	if err != nil {
		return fmt.Errorf("failed to write balance for account %s: %w", accountID, err)
	}
	return nil
}

// AdjustBalancesInTx applies signed balance deltas to multiple accounts
// within the given transaction. Any failure leaves the transaction for the
// caller to roll back, so nothing applies partially.
func (r *SQLiteAccountRepository) AdjustBalancesInTx(ctx context.Context, tx *sql.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error {
	for accountID, delta := range balanceChanges {
		if delta.IsZero() {
			continue
		}
		if err := adjustBalanceInTx(ctx, tx, accountID, delta, now); err != nil {
			return err
		}
	}
	return nil
}

// TransferBalances atomically debits fromAccountID and credits toAccountID.
// The insufficiency check runs inside the transaction against the stored
// balance, so both balances change or neither does.
func (r *SQLiteAccountRepository) TransferBalances(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, now time.Time) (*domain.TransferResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	readBalance := func(accountID string) (decimal.Decimal, error) {
		var s string
		err := tx.QueryRowContext(ctx,
			`SELECT balance FROM accounts WHERE account_id = ?;`, accountID,
		).Scan(&s)
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to read balance for account %s: %w", accountID, err)
		}
		balance, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt balance for account %s: %w", accountID, err)
		}
		return balance, nil
	}

	fromBalance, err := readBalance(fromAccountID)
	if err != nil {
		return nil, err
	}
	toBalance, err := readBalance(toAccountID)
	if err != nil {
		return nil, err
	}

	if fromBalance.LessThan(amount) {
		return nil, fmt.Errorf("%w: account %s cannot cover %s", apperrors.ErrInsufficientBalance, fromAccountID, amount.String())
	}

	newFrom := fromBalance.Sub(amount)
	newTo := toBalance.Add(amount)

	writeBalance := func(accountID string, balance decimal.Decimal) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE accounts SET balance = ?, updated_at = ? WHERE account_id = ?;`,
			balance.String(), now, accountID,
		)
		if err != nil {
			return fmt.Errorf("failed to write balance for account %s: %w", accountID, err)
		}
		return nil
	}

	if err := writeBalance(fromAccountID, newFrom); err != nil {
		return nil, err
	}
	if err := writeBalance(toAccountID, newTo); err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.TransferResult{
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		FromBalance:   newFrom,
		ToBalance:     newTo,
	}, nil
}
