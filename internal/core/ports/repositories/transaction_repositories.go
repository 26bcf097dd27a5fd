package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
)

// TransactionFilter narrows transaction list queries. Nil fields are ignored.
type TransactionFilter struct {
	Type      *domain.TransactionType
	AccountID *string
	From      *time.Time
	To        *time.Time
}

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, reverse-chronological page of
	// transactions using token-based pagination. It returns the transactions,
	// a token for the next page (nil when exhausted), and an error.
	ListTransactions(ctx context.Context, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SearchTransactionsByName retrieves transactions whose name contains the
	// query, reverse-chronological.
	SearchTransactionsByName(ctx context.Context, query string) ([]domain.Transaction, error)

	// CountTransactionsByAccount returns the number of transactions owned by
	// an account.
	CountTransactionsByAccount(ctx context.Context, accountID string) (int, error)

	// SumAmountByTypeForAccount totals the amounts of one transaction type
	// for an account.
	SumAmountByTypeForAccount(ctx context.Context, accountID string, txnType domain.TransactionType) (decimal.Decimal, error)
}

// TransactionWriter defines write operations for transaction data. Every
// method pairs the row mutation with the caller-computed balance adjustment
// in a single store transaction.
type TransactionWriter interface {
	// SaveTransaction inserts a transaction and applies balanceDelta to its
	// owning account atomically. Fails with ErrNotFound (and persists
	// nothing) if the account does not exist.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error

	// UpdateTransaction rewrites a transaction row and applies the given
	// per-account balance deltas atomically. balanceChanges may touch two
	// accounts when the transaction moved between them.
	UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeleteTransaction removes a transaction and applies balanceDelta (the
	// reversal of its original effect) to accountID atomically.
	DeleteTransaction(ctx context.Context, transactionID string, accountID string, balanceDelta decimal.Decimal, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
