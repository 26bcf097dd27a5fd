package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from
// its account's balance.
type TransactionType string

const (
	Earning TransactionType = "EARNING"
	Expense TransactionType = "EXPENSE"
)

// ValidTransactionType reports whether t is one of the known transaction types.
func ValidTransactionType(t TransactionType) bool {
	return t == Earning || t == Expense
}

// Transaction represents a single earning or expense event affecting exactly
// one account. Amount is always positive; the sign is implied by Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	Name          string          `json:"name"`          // User description
	Type          TransactionType `json:"type"`          // EARNING or EXPENSE
	Amount        decimal.Decimal `json:"amount"`        // Positive value
	Category      string          `json:"category"`      // Free-text label
	Datetime      time.Time       `json:"datetime"`      // User-assigned, defaults to creation time
	AccountID     string          `json:"accountID"`     // FK -> Account.AccountID
	AuditFields
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for earnings, negative for expenses.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
