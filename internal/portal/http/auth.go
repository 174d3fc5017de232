package http

import (
	"net/http"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/service"
	"github.com/venturebothq/venturebot/pkg/httpx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService

	// SecureCookies should be true whenever the portal is served over TLS.
	SecureCookies bool
	SessionTTL    time.Duration
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	AgencyName string `json:"agencyName"`
}

// HandleLogin handles POST /api/auth/login.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeUser(w, http.StatusOK, toUser(user))
}

// HandleRegister handles POST /api/auth/register.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.AgencyName == "" {
		writeError(w, http.StatusBadRequest, "name, email and agency name are required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	user, token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password, req.AgencyName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.setSessionCookie(w, token)
	writeUser(w, http.StatusCreated, toUser(user))
}

// HandleLogout handles POST /api/auth/logout. Requires a valid session.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, _ := ctx.Value(httpx.CtxKeySessionID).(string)
	if err := h.AuthService.Logout(ctx, sessionID); err != nil {
		slogx.FromContext(ctx).Warn("logout failed", "session_id", sessionID, "err", err)
	}

	h.clearSessionCookie(w)
	writeData(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// HandleMe handles GET /api/auth/me, returning the session's user.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := ctx.Value(httpx.CtxKeyUserID).(string)
	user, err := h.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeUser(w, http.StatusOK, toUser(user))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     httpx.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
