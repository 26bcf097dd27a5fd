package domain

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

// ValidAccountType reports whether t is one of the known account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Savings, Checking, EWallet, Cash:
		return true
	}
	return false
}

// Account represents a money container within the core domain.
// This is the primary representation used by services.
//
// Balance is a cached value: it equals InitialBalance plus the signed sum of
// all transactions referencing this account, adjusted by any transfers. Every
// mutation path that touches it does so in the same store transaction as the
// triggering write.
type Account struct {
	AccountID      string          `json:"accountID"`      // Primary key (UUID)
	Provider       string          `json:"provider"`       // Issuing institution, free text
	Nickname       string          `json:"nickname"`       // Optional user label
	AccountName    string          `json:"accountName"`    // Account holder name
	Type           AccountType     `json:"type"`           // SAVINGS, CHECKING, E-WALLET, CASH
	Balance        decimal.Decimal `json:"balance"`        // Cached running balance
	InitialBalance decimal.Decimal `json:"initialBalance"` // Balance at creation, immutable
	AuditFields
}
