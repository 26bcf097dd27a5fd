package services

import (
	portsrepo "github.com/trovehq/trove-backend/internal/core/ports/repositories"
	portssvc "github.com/trovehq/trove-backend/internal/core/ports/services"
	"github.com/trovehq/trove-backend/internal/platform/config"
	"github.com/trovehq/trove-backend/pkg/database"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store *database.Store, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, cfg.MaxBalance)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, cfg.MaxBalance)
	container.Ledger = NewLedgerService(repos.AccountRepo, cfg.MaxBalance)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Backup = NewBackupService(store, cfg.BackupDir)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*AccountService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.LedgerSvcFacade      = (*LedgerService)(nil)
	_ portssvc.ReportingSvcFacade   = (*ReportingService)(nil)
	_ portssvc.BackupSvcFacade      = (*BackupService)(nil)
)
