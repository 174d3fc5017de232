package http

import (
	"errors"
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
	"github.com/venturebothq/venturebot/internal/portal/whatsapp"
	"github.com/venturebothq/venturebot/pkg/httpx"
)

type WhatsAppHandler struct {
	MessagingService *service.MessagingService
}

type sendMessageRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// ServeHTTP handles POST /api/whatsapp/send-message.
func (h *WhatsAppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.MessagingService.SendMessage(r.Context(), tenantID(r), req.To, req.Message)
	if err != nil {
		// Provider rejections carry useful text for the operator; pass it on.
		var sendErr *whatsapp.SendError
		if errors.As(err, &sendErr) {
			writeError(w, http.StatusBadGateway, sendErr.Error())
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{Success: true})
}
