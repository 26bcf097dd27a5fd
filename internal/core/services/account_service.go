package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/internal/core/domain"
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/internal/dto"
)

// AccountService implements account CRUD on top of the account repository.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	maxBalance  decimal.Decimal
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, maxBalance decimal.Decimal) *AccountService {
	return &AccountService{accountRepo: repo, maxBalance: maxBalance}
}

// CreateAccount persists a new account. The supplied balance becomes both the
// current and the initial balance.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if req.Balance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}
	if req.Balance.GreaterThan(s.maxBalance) {
		return nil, fmt.Errorf("%w: initial balance exceeds the maximum of %s", apperrors.ErrValidation, s.maxBalance.String())
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Provider:       req.Provider,
		Nickname:       req.Nickname,
		AccountName:    req.AccountName,
		Type:           req.Type,
		Balance:        req.Balance,
		InitialBalance: req.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", "account_id", account.AccountID)
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully", "account_id", account.AccountID)
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", "account_id", accountID)
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of accounts, newest first.
func (s *AccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository", "limit", limit, "offset", offset)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// SearchAccounts retrieves accounts matching the query by name, nickname, or
// provider.
func (s *AccountService) SearchAccounts(ctx context.Context, query string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.SearchAccounts(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search accounts in repository", "query", query)
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// CountAccounts returns the total number of accounts.
func (s *AccountService) CountAccounts(ctx context.Context) (int, error) {
	count, err := s.accountRepo.CountAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts in repository")
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// UpdateAccount applies a partial update to an account's descriptive fields.
// Only fields present in the request change; the balance is untouched.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", "account_id", accountID)
		}
		return nil, err
	}

	if req.Provider != nil {
		account.Provider = *req.Provider
	}
	if req.Nickname != nil {
		account.Nickname = *req.Nickname
	}
	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.Type != nil {
		if !domain.ValidAccountType(*req.Type) {
			return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, *req.Type)
		}
		account.Type = *req.Type
	}
	account.UpdatedAt = time.Now()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account in repository", "account_id", accountID)
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully", "account_id", accountID)
	return account, nil
}

// DeleteAccount removes an account together with its transaction history.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account in repository", "account_id", accountID)
		}
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully", "account_id", accountID)
	return nil
}
