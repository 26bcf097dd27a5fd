package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *services.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestGetBalanceSummary_Passthrough() {
	ctx := context.Background()
	expected := &domain.BalanceSummary{
		TotalBalance: decimal.NewFromInt(1700),
		ByType: map[domain.AccountType]decimal.Decimal{
			domain.Savings: decimal.NewFromInt(1300),
			domain.EWallet: decimal.NewFromInt(400),
		},
		AccountCount: 2,
	}

	suite.mockRepo.On("GetBalanceSummary", ctx).Return(expected, nil).Once()

	summary, err := suite.service.GetBalanceSummary(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetActivityReport_GroupsByDay() {
	ctx := context.Background()
	accountID := uuid.NewString()
	day2 := time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)
	day1 := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	// Repository returns rows newest first.
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), Type: domain.Expense, Amount: decimal.NewFromInt(50), Datetime: day2.Add(20 * time.Hour), AccountID: accountID},
		{TransactionID: uuid.NewString(), Type: domain.Earning, Amount: decimal.NewFromInt(500), Datetime: day2.Add(9 * time.Hour), AccountID: accountID},
		{TransactionID: uuid.NewString(), Type: domain.Expense, Amount: decimal.NewFromInt(200), Datetime: day1.Add(12 * time.Hour), AccountID: accountID},
	}

	suite.mockRepo.On("ListTransactionsForRange", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return(txns, nil).Once()

	groups, err := suite.service.GetActivityReport(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(groups, 2)

	suite.True(groups[0].Date.Equal(day2))
	suite.Len(groups[0].Transactions, 2)
	suite.True(groups[0].TotalEarning.Equal(decimal.NewFromInt(500)))
	suite.True(groups[0].TotalExpense.Equal(decimal.NewFromInt(50)))

	suite.True(groups[1].Date.Equal(day1))
	suite.Len(groups[1].Transactions, 1)
	suite.True(groups[1].TotalEarning.IsZero())
	suite.True(groups[1].TotalExpense.Equal(decimal.NewFromInt(200)))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetActivityReport_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListTransactionsForRange", ctx, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Transaction{}, nil).Once()

	groups, err := suite.service.GetActivityReport(ctx, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(groups)
	suite.Empty(groups)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
