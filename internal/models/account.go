package models

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies where the money in an account lives.
type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
	EWallet  AccountType = "E-WALLET"
	Cash     AccountType = "CASH"
)

// Account is the storage representation of a money container.
// Balance and InitialBalance are stored as TEXT to keep decimal exactness;
// aggregation happens in Go, never with SQL SUM.
type Account struct {
	AccountID      string          `db:"account_id"`
	Provider       string          `db:"provider"`
	Nickname       string          `db:"nickname"` // Nullable
	AccountName    string          `db:"account_name"`
	Type           AccountType     `db:"type"`
	Balance        decimal.Decimal `db:"balance"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	AuditFields
}
