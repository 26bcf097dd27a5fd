package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/internal/core/domain"
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/internal/dto"
)

// LedgerService moves funds between accounts. A transfer only changes the two
// cached balances; it does not add transaction rows on either side.
type LedgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	maxBalance  decimal.Decimal
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, maxBalance decimal.Decimal) *LedgerService {
	return &LedgerService{accountRepo: accountRepo, maxBalance: maxBalance}
}

// Transfer debits the source account and credits the destination atomically.
// Both balances change or neither does.
func (s *LedgerService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.TransferResult, error) {
	if req.FromAccountID == req.ToAccountID {
		return nil, fmt.Errorf("%w: cannot transfer an account to itself", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{req.FromAccountID, req.ToAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for transfer", "from_account_id", req.FromAccountID, "to_account_id", req.ToAccountID)
		return nil, err
	}
	from, ok := accounts[req.FromAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: source account %s not found", apperrors.ErrNotFound, req.FromAccountID)
	}
	to, ok := accounts[req.ToAccountID]
	if !ok {
		return nil, fmt.Errorf("%w: destination account %s not found", apperrors.ErrNotFound, req.ToAccountID)
	}
	if from.Balance.LessThan(req.Amount) {
		return nil, fmt.Errorf("%w: account %s cannot cover %s", apperrors.ErrInsufficientBalance, from.AccountID, req.Amount.String())
	}
	if to.Balance.Add(req.Amount).GreaterThan(s.maxBalance) {
		return nil, fmt.Errorf("%w: account %s would exceed the maximum balance of %s", apperrors.ErrValidation, to.AccountID, s.maxBalance.String())
	}

	result, err := s.accountRepo.TransferBalances(ctx, req.FromAccountID, req.ToAccountID, req.Amount, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.LogError(ctx, err, "Failed to execute transfer in repository", "from_account_id", req.FromAccountID, "to_account_id", req.ToAccountID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transfer completed successfully",
		"from_account_id", result.FromAccountID,
		"to_account_id", result.ToAccountID,
		"amount", result.Amount.String())
	return result, nil
}
