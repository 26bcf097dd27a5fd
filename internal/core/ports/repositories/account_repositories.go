package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts, newest-created first.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// SearchAccounts retrieves accounts whose name, nickname, or provider
	// contains the query, ordered by account name.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)

	// CountAccounts returns the total number of accounts.
	CountAccounts(ctx context.Context) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account; its transactions go with it via the
	// store's referential cascade.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations that keep cached balances in
// step with transaction mutations.
type AccountTransactionSupport interface {
	// AdjustBalancesInTx applies signed balance deltas to multiple accounts
	// within a given store transaction. Fails with ErrNotFound if any account
	// is missing; nothing is applied partially.
	AdjustBalancesInTx(ctx context.Context, tx *sql.Tx, balanceChanges map[string]decimal.Decimal, now time.Time) error

	// TransferBalances atomically debits one account and credits another.
	// Fails with ErrNotFound if either account is missing and with
	// ErrInsufficientBalance if the source cannot cover the amount; in both
	// cases neither balance changes.
	TransferBalances(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, now time.Time) (*domain.TransferResult, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
