package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/core/services"
	"github.com/trovehq/trove-backend/internal/dto"
)

var testMaxBalance = decimal.New(1, 12)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo, testMaxBalance)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Provider:    "BDO",
		Nickname:    "Daily",
		AccountName: "Juan Dela Cruz",
		Type:        domain.Savings,
		Balance:     decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.NotEmpty(createdAccount.AccountID)
	suite.Equal(req.Provider, createdAccount.Provider)
	suite.Equal(req.Nickname, createdAccount.Nickname)
	suite.Equal(req.AccountName, createdAccount.AccountName)
	suite.Equal(req.Type, createdAccount.Type)
	suite.True(createdAccount.Balance.Equal(decimal.NewFromInt(1000)))
	suite.True(createdAccount.InitialBalance.Equal(decimal.NewFromInt(1000)))
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)
	suite.WithinDuration(time.Now(), createdAccount.UpdatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Provider:    "BDO",
		AccountName: "Juan Dela Cruz",
		Type:        domain.Savings,
		Balance:     decimal.NewFromInt(-1),
	}

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OverMaxBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Provider:    "GCash",
		AccountName: "Juan Dela Cruz",
		Type:        domain.EWallet,
		Balance:     testMaxBalance.Add(decimal.NewFromInt(1)),
	}

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Provider:    "BPI",
		AccountName: "Juan Dela Cruz",
		Type:        domain.Checking,
	}

	expectedErr := assert.AnError
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(expectedErr).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	testID := uuid.NewString()
	expectedAccount := &domain.Account{
		AccountID:   testID,
		Provider:    "BDO",
		AccountName: "Juan Dela Cruz",
		Type:        domain.Savings,
		Balance:     decimal.NewFromInt(1500),
	}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(expectedAccount, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().NoError(err)
	suite.Equal(expectedAccount, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, testID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expected := []domain.Account{
		{AccountID: uuid.NewString(), Provider: "BDO", Type: domain.Savings},
		{AccountID: uuid.NewString(), Provider: "GCash", Type: domain.EWallet},
	}

	suite.mockRepo.On("ListAccounts", ctx, 20, 0).Return(expected, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Equal(expected, accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("ListAccounts", ctx, 20, 0).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCountAccounts() {
	ctx := context.Background()

	suite.mockRepo.On("CountAccounts", ctx).Return(3, nil).Once()

	count, err := suite.service.CountAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(3, count)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialFields() {
	ctx := context.Background()
	testID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   testID,
		Provider:    "BDO",
		Nickname:    "Old Nick",
		AccountName: "Juan Dela Cruz",
		Type:        domain.Savings,
		Balance:     decimal.NewFromInt(500),
	}

	newNickname := "New Nick"
	req := dto.UpdateAccountRequest{Nickname: &newNickname}

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Nickname == newNickname &&
			acc.Provider == "BDO" &&
			acc.Balance.Equal(decimal.NewFromInt(500))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, req)

	suite.Require().NoError(err)
	suite.Equal(newNickname, updated.Nickname)
	suite.Equal("BDO", updated.Provider)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateAccount(ctx, testID, dto.UpdateAccountRequest{})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("DeleteAccount", ctx, testID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()

	suite.mockRepo.On("DeleteAccount", ctx, testID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, testID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
