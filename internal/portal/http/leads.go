package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type LeadsHandler struct {
	LeadService *service.LeadService
}

type leadRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	Score      int    `json:"score"`
	Source     string `json:"source"`
	Property   string `json:"property"`
	Budget     string `json:"budget"`
	Notes      string `json:"notes"`
	AssignedTo string `json:"assignedTo"`
}

func (req leadRequest) toNewLead() service.NewLead {
	return service.NewLead{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     req.Status,
		Score:      req.Score,
		Source:     req.Source,
		Property:   req.Property,
		Budget:     req.Budget,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	}
}

// HandleList handles GET /api/leads.
func (h *LeadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadService.ListLeads(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toLeads(leads))
}

// HandleCreate handles POST /api/leads.
func (h *LeadsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.LeadService.CreateLead(r.Context(), tenantID(r), req.toNewLead())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toLead(lead))
}

// HandleUpdate handles PUT /api/leads/{id}.
func (h *LeadsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	lead, err := h.LeadService.UpdateLead(r.Context(), tenantID(r), r.PathValue("id"), req.toNewLead())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toLead(lead))
}

// HandleDelete handles DELETE /api/leads/{id}.
func (h *LeadsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.LeadService.DeleteLead(r.Context(), tenantID(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}
