package service

import (
	"context"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

type TenantService struct {
	Store store.Store
}

// GetTenant fetches the tenant for the current session.
func (s *TenantService) GetTenant(ctx context.Context, tenantID string) (domain.Tenant, error) {
	return s.Store.Tenants().GetTenantByID(ctx, tenantID)
}
