package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/utils"
)

// BalanceSummaryResponse is the aggregate balance view across all accounts.
// TotalBalanceDisplay carries the comma-separated rendering clients show
// directly.
type BalanceSummaryResponse struct {
	TotalBalance        decimal.Decimal            `json:"totalBalance"`
	TotalBalanceDisplay string                     `json:"totalBalanceDisplay"`
	ByType              map[string]decimal.Decimal `json:"byType"`
	AccountCount        int                        `json:"accountCount"`
}

// ToBalanceSummaryResponse converts a domain.BalanceSummary to BalanceSummaryResponse DTO
func ToBalanceSummaryResponse(s *domain.BalanceSummary) BalanceSummaryResponse {
	byType := make(map[string]decimal.Decimal, len(s.ByType))
	for t, v := range s.ByType {
		byType[string(t)] = v
	}
	return BalanceSummaryResponse{
		TotalBalance:        s.TotalBalance,
		TotalBalanceDisplay: utils.FormatAmountWithCommas(s.TotalBalance),
		ByType:              byType,
		AccountCount:        s.AccountCount,
	}
}

// ActivityReportParams holds the optional date window for the activity report.
type ActivityReportParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To   *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// DayGroupResponse is one calendar day of activity with per-day totals.
type DayGroupResponse struct {
	Date                string                `json:"date"`
	Transactions        []TransactionResponse `json:"transactions"`
	TotalEarning        decimal.Decimal       `json:"totalEarning"`
	TotalEarningDisplay string                `json:"totalEarningDisplay"`
	TotalExpense        decimal.Decimal       `json:"totalExpense"`
	TotalExpenseDisplay string                `json:"totalExpenseDisplay"`
}

// ActivityReportResponse is the day-grouped transaction report, newest day first.
type ActivityReportResponse struct {
	Days []DayGroupResponse `json:"days"`
}

// ToDayGroupResponse converts a domain.DayGroup to DayGroupResponse DTO
func ToDayGroupResponse(g domain.DayGroup) DayGroupResponse {
	return DayGroupResponse{
		Date:                g.Date.Format("2006-01-02"),
		Transactions:        ToListTransactionResponse(g.Transactions),
		TotalEarning:        g.TotalEarning,
		TotalEarningDisplay: utils.FormatAmountWithCommas(g.TotalEarning),
		TotalExpense:        g.TotalExpense,
		TotalExpenseDisplay: utils.FormatAmountWithCommas(g.TotalExpense),
	}
}

// ToActivityReportResponse converts day groups to the report DTO
func ToActivityReportResponse(groups []domain.DayGroup) ActivityReportResponse {
	days := make([]DayGroupResponse, 0, len(groups))
	for _, g := range groups {
		days = append(days, ToDayGroupResponse(g))
	}
	return ActivityReportResponse{Days: days}
}
