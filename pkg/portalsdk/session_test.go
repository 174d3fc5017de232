package portalsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakePortal is a minimal stand-in for the portal's auth endpoints. It issues
// a session cookie on login/register and honors it on /api/auth/me.
type fakePortal struct {
	mux      *http.ServeMux
	user     User
	password string
	sessions map[string]bool
	next     int
}

func newFakePortal() *fakePortal {
	p := &fakePortal{
		mux: http.NewServeMux(),
		user: User{
			ID:       "user_1",
			Name:     "Jane",
			Email:    "jane@agency.in",
			TenantID: "tenant_1",
			Role:     "admin",
		},
		password: "letmein12",
		sessions: map[string]bool{},
	}

	p.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct{ Email, Password string }
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != p.user.Email || req.Password != p.password {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "invalid credentials"})
			return
		}
		p.issueSession(w)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "user": p.user})
	})

	p.mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		p.issueSession(w)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "user": p.user})
	})

	p.mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if !p.authed(r) {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "user": p.user})
	})

	p.mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("vb_session"); err == nil {
			delete(p.sessions, c.Value)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]bool{"loggedOut": true}})
	})

	return p
}

func (p *fakePortal) issueSession(w http.ResponseWriter) {
	p.next++
	token := "sess_" + string(rune('a'+p.next))
	p.sessions[token] = true
	http.SetCookie(w, &http.Cookie{Name: "vb_session", Value: token, Path: "/"})
}

func (p *fakePortal) authed(r *http.Request) bool {
	c, err := r.Cookie("vb_session")
	return err == nil && p.sessions[c.Value]
}

func TestSessionStoreLifecycle(t *testing.T) {
	portal := newFakePortal()
	server := httptest.NewServer(portal.mux)
	defer server.Close()

	client := NewClient(server.URL)
	store := NewSessionStore(client)

	var tenantChanges []string
	store.OnTenantChange(func(tenantID string) {
		tenantChanges = append(tenantChanges, tenantID)
	})

	ctx := context.Background()

	t.Run("loading until init settles", func(t *testing.T) {
		require.True(t, store.IsLoading())
		store.Init(ctx)
		require.False(t, store.IsLoading())
		require.False(t, store.IsAuthenticated())
		require.Nil(t, store.User())
		require.Empty(t, tenantChanges, "no tenant change when init finds nobody")
	})

	t.Run("failed login leaves session cleared", func(t *testing.T) {
		require.False(t, store.Login(ctx, "jane@agency.in", "wrong-password"))
		require.False(t, store.IsAuthenticated())
		require.Empty(t, store.TenantID())
	})

	t.Run("login populates user and fires tenant hook", func(t *testing.T) {
		require.True(t, store.Login(ctx, "jane@agency.in", "letmein12"))
		require.True(t, store.IsAuthenticated())
		require.Equal(t, "tenant_1", store.TenantID())

		user := store.User()
		require.NotNil(t, user)
		require.Equal(t, "jane@agency.in", user.Email)
		require.Equal(t, []string{"tenant_1"}, tenantChanges)
	})

	t.Run("relogin with same tenant does not refire hook", func(t *testing.T) {
		require.True(t, store.Login(ctx, "jane@agency.in", "letmein12"))
		require.Equal(t, []string{"tenant_1"}, tenantChanges)
	})

	t.Run("logout clears state and fires hook with empty tenant", func(t *testing.T) {
		store.Logout(ctx)
		require.False(t, store.IsAuthenticated())
		require.Nil(t, store.User())
		require.Equal(t, []string{"tenant_1", ""}, tenantChanges)
	})

	t.Run("init rehydrates from existing cookie", func(t *testing.T) {
		require.True(t, store.Login(ctx, "jane@agency.in", "letmein12"))

		rehydrated := NewSessionStore(client) // shares the cookie jar
		rehydrated.Init(ctx)
		require.True(t, rehydrated.IsAuthenticated())
		require.Equal(t, "tenant_1", rehydrated.TenantID())
	})
}

func TestSessionStoreLogoutClearsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "vb_session", Value: "sess", Path: "/"})
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"user":    User{ID: "user_1", TenantID: "tenant_1"},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	store := NewSessionStore(NewClient(server.URL))
	ctx := context.Background()

	require.True(t, store.Login(ctx, "jane@agency.in", "letmein12"))
	store.Logout(ctx)
	require.False(t, store.IsAuthenticated(), "logout clears state even when the request fails")
}

func TestSessionStoreRegister(t *testing.T) {
	portal := newFakePortal()
	server := httptest.NewServer(portal.mux)
	defer server.Close()

	store := NewSessionStore(NewClient(server.URL))
	require.True(t, store.Register(context.Background(), "Jane", "jane@agency.in", "letmein12", "Jane Realty"))
	require.True(t, store.IsAuthenticated())
	require.Equal(t, "tenant_1", store.TenantID())
}
