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

// TransactionService implements transaction CRUD. Every mutation computes the
// balance adjustment for the affected accounts and hands it to the repository,
// which applies row change and balance change in one store transaction.
type TransactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	maxBalance  decimal.Decimal
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, maxBalance decimal.Decimal) *TransactionService {
	return &TransactionService{txnRepo: txnRepo, accountRepo: accountRepo, maxBalance: maxBalance}
}

// checkBalanceBounds rejects a prospective balance that is negative or above
// the configured ceiling.
func (s *TransactionService) checkBalanceBounds(balance decimal.Decimal, accountID string) error {
	if balance.IsNegative() {
		return fmt.Errorf("%w: account %s would be overdrawn", apperrors.ErrInsufficientBalance, accountID)
	}
	if balance.GreaterThan(s.maxBalance) {
		return fmt.Errorf("%w: account %s would exceed the maximum balance of %s", apperrors.ErrValidation, accountID, s.maxBalance.String())
	}
	return nil
}

// CreateTransaction records a new earning or expense and moves the owning
// account's balance by the signed amount.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for transaction create", "account_id", req.AccountID)
		}
		return nil, err
	}

	now := time.Now()
	datetime := now
	if req.Datetime != nil {
		datetime = *req.Datetime
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          req.Name,
		Type:          req.Type,
		Amount:        req.Amount,
		Category:      req.Category,
		Datetime:      datetime,
		AccountID:     req.AccountID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	delta := txn.SignedAmount()
	if err := s.checkBalanceBounds(account.Balance.Add(delta), account.AccountID); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, delta); err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository", "transaction_id", txn.TransactionID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully", "transaction_id", txn.TransactionID, "account_id", txn.AccountID)
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID in repository", "transaction_id", transactionID)
		}
		return nil, err
	}
	return txn, nil
}

// ListTransactions retrieves a filtered page of transactions.
func (s *TransactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	txns, token, err := s.txnRepo.ListTransactions(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository", "limit", limit)
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, token, nil
}

// SearchTransactionsByName retrieves transactions matching the query.
func (s *TransactionService) SearchTransactionsByName(ctx context.Context, query string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.SearchTransactionsByName(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to search transactions in repository", "query", query)
		return nil, fmt.Errorf("failed to search transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// UpdateTransaction applies a partial update. The old effect is reversed and
// the new effect applied as per-account net deltas so that cached balances
// stay exact even when the transaction changes type, amount, or account.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for update", "transaction_id", transactionID)
		}
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Type != nil {
		if !domain.ValidTransactionType(*req.Type) {
			return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, *req.Type)
		}
		updated.Type = *req.Type
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Datetime != nil {
		updated.Datetime = *req.Datetime
	}
	if req.AccountID != nil {
		updated.AccountID = *req.AccountID
	}
	updated.UpdatedAt = time.Now()

	// Net balance deltas: reverse the old effect, apply the new one. When
	// the owning account changes this touches two accounts.
	balanceChanges := map[string]decimal.Decimal{}
	balanceChanges[existing.AccountID] = existing.SignedAmount().Neg()
	balanceChanges[updated.AccountID] = balanceChanges[updated.AccountID].Add(updated.SignedAmount())

	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for transaction update", "transaction_id", transactionID)
		return nil, err
	}
	for id, delta := range balanceChanges {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrNotFound, id)
		}
		if err := s.checkBalanceBounds(account.Balance.Add(delta), id); err != nil {
			return nil, err
		}
	}

	if err := s.txnRepo.UpdateTransaction(ctx, updated, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to update transaction in repository", "transaction_id", transactionID)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", "transaction_id", transactionID)
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the
// owning account's balance.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction for delete", "transaction_id", transactionID)
		}
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, existing.AccountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load account for transaction delete", "account_id", existing.AccountID)
		}
		return err
	}

	// Deleting an earning takes money back out, so the reversal is bounded
	// the same way any other mutation is.
	delta := existing.SignedAmount().Neg()
	if err := s.checkBalanceBounds(account.Balance.Add(delta), account.AccountID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, existing.AccountID, delta, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction in repository", "transaction_id", transactionID)
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully", "transaction_id", transactionID, "account_id", existing.AccountID)
	return nil
}
