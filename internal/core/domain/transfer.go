package domain

import "github.com/shopspring/decimal"

// TransferResult reports the outcome of a transfer: the post-transfer
// balances of both accounts. Transfers do not produce transaction rows;
// they are visible only as the pair of balance deltas.
type TransferResult struct {
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	FromBalance   decimal.Decimal `json:"fromBalance"`
	ToBalance     decimal.Decimal `json:"toBalance"`
}
