package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type TenantHandler struct {
	TenantService *service.TenantService
}

// ServeHTTP handles GET /api/tenant.
func (h *TenantHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tenant, err := h.TenantService.GetTenant(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toTenant(tenant))
}
