package httpx

import (
	"context"
	"net/http"

	"github.com/venturebothq/venturebot/pkg/slogx"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "vb_session"

// SessionAuthenticator validates a session token and resolves the identity
// behind it. Implemented by the portal's auth service so the middleware stays
// free of storage concerns.
type SessionAuthenticator interface {
	// AuthenticateSession returns the session, user and tenant ids for a valid
	// token. Any error means the request is unauthenticated.
	AuthenticateSession(ctx context.Context, token string) (sessionID, userID, tenantID string, err error)
}

// SessionMiddleware authenticates requests via the session cookie and injects
// the resolved ids into the request context. Requests without a valid session
// receive a 401 with the portal's JSON error envelope.
func SessionMiddleware(auth SessionAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeUnauthenticated(w)
				return
			}

			sessionID, userID, tenantID, err := auth.AuthenticateSession(ctx, cookie.Value)
			if err != nil {
				slogx.FromContext(ctx).Debug("session rejected", "err", err)
				writeUnauthenticated(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeySessionID, sessionID)
			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyTenantID, tenantID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthenticated(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   "not authenticated",
	})
}
