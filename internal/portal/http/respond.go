package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/venturebothq/venturebot/internal/portal/service"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/httpx"
	"github.com/venturebothq/venturebot/pkg/portalsdk"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

// writeData wraps v in the {success, data} envelope every portal endpoint
// uses.
func writeData(w http.ResponseWriter, code int, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.WriteJSON(w, code, struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{Success: true, Data: raw})
}

// writeUser is the auth endpoints' shape: the user sits under a "user" key
// rather than the generic "data".
func writeUser(w http.ResponseWriter, code int, u portalsdk.User) {
	httpx.WriteJSON(w, code, struct {
		Success bool           `json:"success"`
		User    portalsdk.User `json:"user"`
	}{Success: true, User: u})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{Success: false, Error: msg})
}

// writeServiceError maps known service errors onto status codes; anything
// unrecognised becomes a logged 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "an account with this email already exists")
	case errors.Is(err, service.ErrInsufficientCredits):
		writeError(w, http.StatusPaymentRequired, "insufficient credits")
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrInvalidLeadStatus),
		errors.Is(err, service.ErrInvalidCampaignType),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrPhoneRequired),
		errors.Is(err, service.ErrMessageRequired),
		errors.Is(err, service.ErrUnknownPackage),
		errors.Is(err, service.ErrUnknownPlan),
		errors.Is(err, service.ErrInvalidBillingCycle):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrTemplateNotDraft),
		errors.Is(err, service.ErrOrderAlreadySettled):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidSignature),
		errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusBadRequest, "payment verification failed")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a JSON request body into dst, limiting its size.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func tenantID(r *http.Request) string {
	id, _ := r.Context().Value(httpx.CtxKeyTenantID).(string)
	return id
}
