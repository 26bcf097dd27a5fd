package dto

import (
	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
)

// TransferRequest defines the data needed to move funds between two accounts.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required,uuid4"`
	ToAccountID   string          `json:"toAccountID" binding:"required,uuid4,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount" binding:"required,decimalgtzero"`
}

// TransferResponse reports both post-transfer balances.
type TransferResponse struct {
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	FromBalance   decimal.Decimal `json:"fromBalance"`
	ToBalance     decimal.Decimal `json:"toBalance"`
}

// ToTransferResponse converts a domain.TransferResult to TransferResponse DTO
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		FromAccountID: res.FromAccountID,
		ToAccountID:   res.ToAccountID,
		Amount:        res.Amount,
		FromBalance:   res.FromBalance,
		ToBalance:     res.ToBalance,
	}
}
