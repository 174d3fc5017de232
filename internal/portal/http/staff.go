package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type StaffHandler struct {
	StaffService *service.StaffService
}

// ServeHTTP handles GET /api/staff.
func (h *StaffHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	members, err := h.StaffService.ListStaff(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toStaff(members))
}
