package services

import (
	"context"

	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, token-paginated page of
	// transactions ordered by datetime descending. The returned token is nil
	// when no further pages exist.
	ListTransactions(ctx context.Context, filter repositories.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// SearchTransactionsByName retrieves transactions whose name matches the query.
	SearchTransactionsByName(ctx context.Context, query string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data.
// Every mutation also moves the owning account's balance in the same
// database transaction.
type TransactionWriterSvc interface {
	// CreateTransaction persists a new transaction and applies its signed
	// amount to the owning account's balance.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update and reconciles the balance
	// of every affected account with the net delta.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on the
	// owning account's balance.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
