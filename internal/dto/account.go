package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Provider    string             `json:"provider" binding:"required"`
	Nickname    string             `json:"nickname"` // Optional
	AccountName string             `json:"accountName" binding:"required"`
	Type        domain.AccountType `json:"type" binding:"required,oneof=SAVINGS CHECKING E-WALLET CASH"`
	Balance     decimal.Decimal    `json:"balance"` // Initial balance, defaults to zero
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not
// provided; the service applies each supplied field individually, never a
// blind merge. Balance is deliberately absent: it only moves through
// transaction and transfer mutations.
type UpdateAccountRequest struct {
	Provider    *string             `json:"provider"`
	Nickname    *string             `json:"nickname"`
	AccountName *string             `json:"accountName"`
	Type        *domain.AccountType `json:"type" binding:"omitempty,oneof=SAVINGS CHECKING E-WALLET CASH"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Provider       string             `json:"provider"`
	Nickname       string             `json:"nickname"`
	AccountName    string             `json:"accountName"`
	Type           domain.AccountType `json:"type"`
	Balance        decimal.Decimal    `json:"balance"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Provider:       acc.Provider,
		Nickname:       acc.Nickname,
		AccountName:    acc.AccountName,
		Type:           acc.Type,
		Balance:        acc.Balance,
		InitialBalance: acc.InitialBalance,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
	Search string `form:"search"` // Optional substring match on name/nickname/provider
}

// ListAccountsResponse wraps the list of accounts. Total is the full account
// count, so clients can page without a separate request; for searches it is
// the number of matches.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Total    int               `json:"total"`
}
