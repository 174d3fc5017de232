package http

import (
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
)

type CampaignsHandler struct {
	CampaignService *service.CampaignService
}

type campaignRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	TemplateName   string `json:"templateName"`
	TargetAudience string `json:"targetAudience"`
	Message        string `json:"message"`
}

// HandleList handles GET /api/campaigns.
func (h *CampaignsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.CampaignService.ListCampaigns(r.Context(), tenantID(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaigns(campaigns))
}

// HandleCreate handles POST /api/campaigns.
func (h *CampaignsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.CampaignService.CreateCampaign(r.Context(), tenantID(r), service.NewCampaign{
		Name:           req.Name,
		Type:           req.Type,
		TemplateName:   req.TemplateName,
		TargetAudience: req.TargetAudience,
		Message:        req.Message,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toCampaign(c))
}

// HandleDelete handles DELETE /api/campaigns/{id}.
func (h *CampaignsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.CampaignService.DeleteCampaign(r.Context(), tenantID(r), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, map[string]bool{"deleted": true})
}

// HandleSubmitTemplate handles POST /api/campaigns/{id}/submit-template.
func (h *CampaignsHandler) HandleSubmitTemplate(w http.ResponseWriter, r *http.Request) {
	c, err := h.CampaignService.SubmitTemplate(r.Context(), tenantID(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaign(c))
}
