package services

import (
	"context"

	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts, newest first.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// SearchAccounts retrieves accounts whose name, nickname, or provider
	// matches the query.
	SearchAccounts(ctx context.Context, query string) ([]domain.Account, error)

	// CountAccounts returns the total number of accounts.
	CountAccounts(ctx context.Context) (int, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an existing account's details. Balance is not
	// editable here; it only moves through transactions and transfers.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account and all of its transactions.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
