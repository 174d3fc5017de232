package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// HandleStats handles GET /api/dashboard/stats.
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.DashboardService.Stats(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, stats)
}

// HandleCharts handles GET /api/dashboard/charts.
func (h *DashboardHandler) HandleCharts(w http.ResponseWriter, r *http.Request) {
	charts, err := h.DashboardService.Charts(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, charts)
}
