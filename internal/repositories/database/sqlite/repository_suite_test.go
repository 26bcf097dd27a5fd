package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/trovehq/trove-backend/internal/apperrors"
	"github.com/trovehq/trove-backend/internal/core/domain"
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/internal/repositories/database/sqlite"
	"github.com/trovehq/trove-backend/pkg/database"
)

// RepositorySuite exercises the repositories against a real in-memory store,
// migrations and all.
type RepositorySuite struct {
	suite.Suite
	store *database.Store
	repos portsrepo.RepositoryProvider
	ctx   context.Context
}

func (s *RepositorySuite) SetupTest() {
	store, err := database.Open(":memory:", "trove-test-signature")
	s.Require().NoError(err)
	s.store = store
	s.repos = sqlite.NewRepositoryProvider(store)
	s.ctx = context.Background()
}

func (s *RepositorySuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *RepositorySuite) newAccount(provider string, accountType domain.AccountType, balance int64) domain.Account {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Provider:       provider,
		AccountName:    "Juan Dela Cruz",
		Type:           accountType,
		Balance:        decimal.NewFromInt(balance),
		InitialBalance: decimal.NewFromInt(balance),
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	s.Require().NoError(s.repos.AccountRepo.SaveAccount(s.ctx, account))
	return account
}

func (s *RepositorySuite) newTransaction(accountID string, txnType domain.TransactionType, amount int64, when time.Time) domain.Transaction {
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          "txn",
		Type:          txnType,
		Amount:        decimal.NewFromInt(amount),
		Category:      "General",
		Datetime:      when,
		AccountID:     accountID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, txn, txn.SignedAmount()))
	return txn
}

func (s *RepositorySuite) balanceOf(accountID string) decimal.Decimal {
	account, err := s.repos.AccountRepo.FindAccountByID(s.ctx, accountID)
	s.Require().NoError(err)
	return account.Balance
}

// --- Accounts ---

func (s *RepositorySuite) TestSaveAndFindAccount() {
	account := s.newAccount("BDO", domain.Savings, 1000)

	found, err := s.repos.AccountRepo.FindAccountByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal(account.AccountID, found.AccountID)
	s.Equal("BDO", found.Provider)
	s.Equal(domain.Savings, found.Type)
	s.True(found.Balance.Equal(decimal.NewFromInt(1000)))
	s.True(found.InitialBalance.Equal(decimal.NewFromInt(1000)))
}

func (s *RepositorySuite) TestFindAccountByID_NotFound() {
	_, err := s.repos.AccountRepo.FindAccountByID(s.ctx, uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestSaveAccount_DuplicateID() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	err := s.repos.AccountRepo.SaveAccount(s.ctx, account)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *RepositorySuite) TestCountAccounts() {
	count, err := s.repos.AccountRepo.CountAccounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, count)

	s.newAccount("BDO", domain.Savings, 1000)
	s.newAccount("GCash", domain.EWallet, 50)

	count, err = s.repos.AccountRepo.CountAccounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}

func (s *RepositorySuite) TestUpdateAccount_DoesNotTouchBalance() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	s.newTransaction(account.AccountID, domain.Earning, 500, time.Now().UTC())

	account.Nickname = "Daily driver"
	account.UpdatedAt = time.Now().UTC()
	s.Require().NoError(s.repos.AccountRepo.UpdateAccount(s.ctx, account))

	found, err := s.repos.AccountRepo.FindAccountByID(s.ctx, account.AccountID)
	s.Require().NoError(err)
	s.Equal("Daily driver", found.Nickname)
	s.True(found.Balance.Equal(decimal.NewFromInt(1500)), "descriptive update must not clobber the adjusted balance")
}

func (s *RepositorySuite) TestSearchAccounts() {
	s.newAccount("BDO", domain.Savings, 100)
	s.newAccount("GCash", domain.EWallet, 200)

	found, err := s.repos.AccountRepo.SearchAccounts(s.ctx, "gca")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("GCash", found[0].Provider)
}

func (s *RepositorySuite) TestDeleteAccount_CascadesTransactions() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	txn := s.newTransaction(account.AccountID, domain.Earning, 500, time.Now().UTC())

	s.Require().NoError(s.repos.AccountRepo.DeleteAccount(s.ctx, account.AccountID))

	_, err := s.repos.AccountRepo.FindAccountByID(s.ctx, account.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.repos.TransactionRepo.FindTransactionByID(s.ctx, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Transactions and balance consistency ---

func (s *RepositorySuite) TestEarningThenExpenseAdjustsBalance() {
	account := s.newAccount("BDO", domain.Savings, 1000)

	s.newTransaction(account.AccountID, domain.Earning, 500, time.Now().UTC())
	s.True(s.balanceOf(account.AccountID).Equal(decimal.NewFromInt(1500)))

	s.newTransaction(account.AccountID, domain.Expense, 200, time.Now().UTC())
	s.True(s.balanceOf(account.AccountID).Equal(decimal.NewFromInt(1300)))
}

func (s *RepositorySuite) TestSaveTransaction_MissingAccountPersistsNothing() {
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          "orphan",
		Type:          domain.Earning,
		Amount:        decimal.NewFromInt(100),
		Category:      "General",
		Datetime:      now,
		AccountID:     uuid.NewString(),
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	err := s.repos.TransactionRepo.SaveTransaction(s.ctx, txn, txn.SignedAmount())
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.repos.TransactionRepo.FindTransactionByID(s.ctx, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestDeleteTransaction_ReversesBalance() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	txn := s.newTransaction(account.AccountID, domain.Expense, 200, time.Now().UTC())
	s.True(s.balanceOf(account.AccountID).Equal(decimal.NewFromInt(800)))

	err := s.repos.TransactionRepo.DeleteTransaction(s.ctx, txn.TransactionID, account.AccountID, txn.SignedAmount().Neg(), time.Now().UTC())
	s.Require().NoError(err)
	s.True(s.balanceOf(account.AccountID).Equal(decimal.NewFromInt(1000)))
}

func (s *RepositorySuite) TestUpdateTransaction_MovesBetweenAccounts() {
	first := s.newAccount("BDO", domain.Savings, 1000)
	second := s.newAccount("GCash", domain.EWallet, 100)
	txn := s.newTransaction(first.AccountID, domain.Earning, 500, time.Now().UTC())
	s.True(s.balanceOf(first.AccountID).Equal(decimal.NewFromInt(1500)))

	txn.AccountID = second.AccountID
	txn.UpdatedAt = time.Now().UTC()
	changes := map[string]decimal.Decimal{
		first.AccountID:  decimal.NewFromInt(-500),
		second.AccountID: decimal.NewFromInt(500),
	}
	s.Require().NoError(s.repos.TransactionRepo.UpdateTransaction(s.ctx, txn, changes))

	s.True(s.balanceOf(first.AccountID).Equal(decimal.NewFromInt(1000)))
	s.True(s.balanceOf(second.AccountID).Equal(decimal.NewFromInt(600)))
}

func (s *RepositorySuite) TestListTransactions_FilterAndPagination() {
	account := s.newAccount("BDO", domain.Savings, 10000)
	base := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.newTransaction(account.AccountID, domain.Expense, 10, base.Add(time.Duration(i)*time.Hour))
	}
	s.newTransaction(account.AccountID, domain.Earning, 100, base.Add(10*time.Hour))

	expenseType := domain.Expense
	filter := portsrepo.TransactionFilter{Type: &expenseType, AccountID: &account.AccountID}

	page1, token, err := s.repos.TransactionRepo.ListTransactions(s.ctx, filter, 3, nil)
	s.Require().NoError(err)
	s.Require().Len(page1, 3)
	s.Require().NotNil(token)
	// Newest first.
	s.True(page1[0].Datetime.After(page1[1].Datetime))

	page2, token2, err := s.repos.TransactionRepo.ListTransactions(s.ctx, filter, 3, token)
	s.Require().NoError(err)
	s.Require().Len(page2, 2)
	s.Nil(token2)

	seen := map[string]bool{}
	for _, txn := range append(page1, page2...) {
		s.Equal(domain.Expense, txn.Type)
		s.False(seen[txn.TransactionID], "pages must not overlap")
		seen[txn.TransactionID] = true
	}
}

func (s *RepositorySuite) TestListTransactions_InvalidToken() {
	bad := "not-a-token"
	_, _, err := s.repos.TransactionRepo.ListTransactions(s.ctx, portsrepo.TransactionFilter{}, 10, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *RepositorySuite) TestListTransactions_NonPositiveLimit() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	s.newTransaction(account.AccountID, domain.Earning, 500, time.Now().UTC())

	_, _, err := s.repos.TransactionRepo.ListTransactions(s.ctx, portsrepo.TransactionFilter{}, 0, nil)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, _, err = s.repos.TransactionRepo.ListTransactions(s.ctx, portsrepo.TransactionFilter{}, -5, nil)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *RepositorySuite) TestSearchTransactionsByName() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	now := time.Now().UTC()

	groceries := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          "Weekly groceries",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(100),
		Category:      "Food",
		Datetime:      now,
		AccountID:     account.AccountID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, groceries, groceries.SignedAmount()))
	coffee := domain.Transaction{
		TransactionID: uuid.NewString(),
		Name:          "Morning coffee",
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(5),
		Category:      "Food",
		Datetime:      now.Add(-time.Hour),
		AccountID:     account.AccountID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, coffee, coffee.SignedAmount()))

	found, err := s.repos.TransactionRepo.SearchTransactionsByName(s.ctx, "grocer")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(groceries.TransactionID, found[0].TransactionID)

	none, err := s.repos.TransactionRepo.SearchTransactionsByName(s.ctx, "rent")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositorySuite) TestSumAmountByTypeForAccount() {
	account := s.newAccount("BDO", domain.Savings, 1000)
	now := time.Now().UTC()
	s.newTransaction(account.AccountID, domain.Earning, 500, now)
	s.newTransaction(account.AccountID, domain.Earning, 250, now)
	s.newTransaction(account.AccountID, domain.Expense, 100, now)

	total, err := s.repos.TransactionRepo.SumAmountByTypeForAccount(s.ctx, account.AccountID, domain.Earning)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.NewFromInt(750)))
}

// --- Transfers ---

func (s *RepositorySuite) TestTransferBalances_BothSidesMove() {
	x := s.newAccount("BDO", domain.Savings, 300)
	y := s.newAccount("GCash", domain.EWallet, 100)

	result, err := s.repos.AccountRepo.TransferBalances(s.ctx, x.AccountID, y.AccountID, decimal.NewFromInt(300), time.Now().UTC())
	s.Require().NoError(err)
	s.True(result.FromBalance.IsZero())
	s.True(result.ToBalance.Equal(decimal.NewFromInt(400)))

	s.True(s.balanceOf(x.AccountID).IsZero())
	s.True(s.balanceOf(y.AccountID).Equal(decimal.NewFromInt(400)))
}

func (s *RepositorySuite) TestTransferBalances_InsufficientLeavesBothUntouched() {
	x := s.newAccount("BDO", domain.Savings, 300)
	y := s.newAccount("GCash", domain.EWallet, 100)

	_, err := s.repos.AccountRepo.TransferBalances(s.ctx, x.AccountID, y.AccountID, decimal.NewFromInt(500), time.Now().UTC())
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)

	s.True(s.balanceOf(x.AccountID).Equal(decimal.NewFromInt(300)))
	s.True(s.balanceOf(y.AccountID).Equal(decimal.NewFromInt(100)))
}

func (s *RepositorySuite) TestTransferBalances_MissingAccount() {
	x := s.newAccount("BDO", domain.Savings, 300)

	_, err := s.repos.AccountRepo.TransferBalances(s.ctx, x.AccountID, uuid.NewString(), decimal.NewFromInt(100), time.Now().UTC())
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.True(s.balanceOf(x.AccountID).Equal(decimal.NewFromInt(300)))
}

func (s *RepositorySuite) TestTransferProducesNoTransactionRows() {
	x := s.newAccount("BDO", domain.Savings, 300)
	y := s.newAccount("GCash", domain.EWallet, 100)

	_, err := s.repos.AccountRepo.TransferBalances(s.ctx, x.AccountID, y.AccountID, decimal.NewFromInt(50), time.Now().UTC())
	s.Require().NoError(err)

	for _, id := range []string{x.AccountID, y.AccountID} {
		count, err := s.repos.TransactionRepo.CountTransactionsByAccount(s.ctx, id)
		s.Require().NoError(err)
		s.Zero(count)
	}
}

// --- Reporting ---

func (s *RepositorySuite) TestGetBalanceSummary() {
	s.newAccount("BDO", domain.Savings, 1300)
	s.newAccount("GCash", domain.EWallet, 400)

	summary, err := s.repos.ReportingRepo.GetBalanceSummary(s.ctx)
	s.Require().NoError(err)
	s.True(summary.TotalBalance.Equal(decimal.NewFromInt(1700)))
	s.Equal(2, summary.AccountCount)
	s.True(summary.ByType[domain.Savings].Equal(decimal.NewFromInt(1300)))
	s.True(summary.ByType[domain.EWallet].Equal(decimal.NewFromInt(400)))
}

func (s *RepositorySuite) TestListTransactionsForRange() {
	account := s.newAccount("BDO", domain.Savings, 10000)
	inWindow := time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)
	outOfWindow := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	s.newTransaction(account.AccountID, domain.Expense, 10, inWindow)
	s.newTransaction(account.AccountID, domain.Expense, 20, outOfWindow)

	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	txns, err := s.repos.ReportingRepo.ListTransactionsForRange(s.ctx, &from, nil)
	s.Require().NoError(err)
	s.Require().Len(txns, 1)
	s.True(txns[0].Datetime.Equal(inWindow))
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
