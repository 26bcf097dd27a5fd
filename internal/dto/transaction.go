package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record an earning or expense.
type CreateTransactionRequest struct {
	Name      string                 `json:"name" binding:"required"`
	Type      domain.TransactionType `json:"type" binding:"required,oneof=EARNING EXPENSE"`
	Amount    decimal.Decimal        `json:"amount" binding:"required,decimalgtzero"`
	Category  string                 `json:"category" binding:"required"`
	Datetime  *time.Time             `json:"datetime"` // Optional, defaults to now
	AccountID string                 `json:"accountID" binding:"required,uuid4"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Pointer fields are applied individually; absent fields stay untouched.
type UpdateTransactionRequest struct {
	Name      *string                 `json:"name"`
	Type      *domain.TransactionType `json:"type" binding:"omitempty,oneof=EARNING EXPENSE"`
	Amount    *decimal.Decimal        `json:"amount" binding:"omitempty,decimalgtzero"`
	Category  *string                 `json:"category"`
	Datetime  *time.Time              `json:"datetime"`
	AccountID *string                 `json:"accountID" binding:"omitempty,uuid4"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Name          string                 `json:"name"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Category      string                 `json:"category"`
	Datetime      time.Time              `json:"datetime"`
	AccountID     string                 `json:"accountID"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Name:          txn.Name,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Category:      txn.Category,
		Datetime:      txn.Datetime,
		AccountID:     txn.AccountID,
		CreatedAt:     txn.CreatedAt,
		UpdatedAt:     txn.UpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type      *domain.TransactionType `form:"type" binding:"omitempty,oneof=EARNING EXPENSE"`
	AccountID *string                 `form:"accountID" binding:"omitempty,uuid4"`
	From      *time.Time              `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time              `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Search    string                  `form:"search"` // Optional substring match on name
	Limit     int                     `form:"limit,default=50" binding:"min=1"`
	NextToken *string                 `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
