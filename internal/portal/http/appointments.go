package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type AppointmentsHandler struct {
	AppointmentService *service.AppointmentService
}

type appointmentRequest struct {
	LeadID   string `json:"leadId"`
	LeadName string `json:"leadName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Property string `json:"property"`
	Agent    string `json:"agent"`
	Notes    string `json:"notes"`
}

// HandleList handles GET /api/appointments.
func (h *AppointmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	appts, err := h.AppointmentService.ListAppointments(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toAppointments(appts))
}

// HandleCreate handles POST /api/appointments.
func (h *AppointmentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req appointmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.AppointmentService.CreateAppointment(r.Context(), tenantID(r), service.NewAppointment{
		LeadID:   req.LeadID,
		LeadName: req.LeadName,
		Date:     req.Date,
		Time:     req.Time,
		Type:     req.Type,
		Property: req.Property,
		Agent:    req.Agent,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toAppointment(a))
}
