package service

import (
	"context"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

type StaffService struct {
	Store store.Store
}

func (s *StaffService) ListStaff(ctx context.Context, tenantID string) ([]domain.Staff, error) {
	return s.Store.Staff().ListStaff(ctx, tenantID)
}
