package models

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

// Transaction is the storage representation of a single earning or expense.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Name          string          `db:"name"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Datetime      time.Time       `db:"datetime"`
	AccountID     string          `db:"account_id"`
	AuditFields
}
