package service

import (
	"context"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

type TransactionService struct {
	Store store.Store
}

func (s *TransactionService) ListTransactions(ctx context.Context, tenantID string) ([]domain.Transaction, error) {
	return s.Store.Transactions().ListTransactions(ctx, tenantID)
}
