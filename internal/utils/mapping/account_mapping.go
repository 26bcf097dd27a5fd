package mapping

import (
	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Provider:       d.Provider,
		Nickname:       d.Nickname,
		AccountName:    d.AccountName,
		Type:           models.AccountType(d.Type),
		Balance:        d.Balance,
		InitialBalance: d.InitialBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Provider:       m.Provider,
		Nickname:       m.Nickname,
		AccountName:    m.AccountName,
		Type:           domain.AccountType(m.Type),
		Balance:        m.Balance,
		InitialBalance: m.InitialBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
