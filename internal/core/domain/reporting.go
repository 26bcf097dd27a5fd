package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSummary aggregates cached balances across all accounts.
type BalanceSummary struct {
	TotalBalance decimal.Decimal                 `json:"totalBalance"`
	ByType       map[AccountType]decimal.Decimal `json:"byType"`
	AccountCount int                             `json:"accountCount"`
}

// DayGroup is one calendar-day bucket of transactions, newest day first when
// returned in a slice.
type DayGroup struct {
	Date         time.Time       `json:"date"` // Midnight of the bucket's day
	Transactions []Transaction   `json:"transactions"`
	TotalEarning decimal.Decimal `json:"totalEarning"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}
