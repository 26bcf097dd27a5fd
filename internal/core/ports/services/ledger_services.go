package services

import (
	"context"

	"github.com/trovehq/trove-backend/internal/core/domain"
	"github.com/trovehq/trove-backend/internal/dto"
)

// LedgerSvcFacade defines fund movements between accounts.
type LedgerSvcFacade interface {
	// Transfer moves funds from one account to another atomically. Both
	// balances change or neither does.
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.TransferResult, error)
}
