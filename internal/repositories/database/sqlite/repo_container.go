package sqlite

import (
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	"github.com/trovehq/trove-backend/pkg/database"
)

// NewRepositoryProvider wires all repositories over the given store. The
// transaction repository shares the account repository so every balance
// adjustment goes through one implementation.
func NewRepositoryProvider(store *database.Store) portsrepo.RepositoryProvider {
	accountRepo := newSQLiteAccountRepository(store)
	return portsrepo.RepositoryProvider{
		AccountRepo:     accountRepo,
		TransactionRepo: newSQLiteTransactionRepository(store, accountRepo),
		ReportingRepo:   newSQLiteReportingRepository(store),
	}
}
