package portalsdk

import (
	"context"
	"sync"
)

// SessionStore tracks who is signed in. It wraps a *Client whose cookie jar
// carries the actual session; the store only mirrors the server's answer so
// callers have a synchronous view of the authenticated user.
//
// Login, Register and Logout report success as a bool rather than an error:
// the store's contract is that after any of them returns, its state matches
// reality, whatever went wrong on the wire.
type SessionStore struct {
	client *Client

	mu         sync.RWMutex
	user       *User
	loading    bool
	lastTenant string

	onTenantChange func(tenantID string)
}

// NewSessionStore creates a session store around client. The store reports
// IsLoading until Init settles.
func NewSessionStore(client *Client) *SessionStore {
	return &SessionStore{
		client:  client,
		loading: true,
	}
}

// OnTenantChange registers a hook invoked whenever the session's tenant
// changes, including to the empty string on logout. Register it before
// calling Init.
func (s *SessionStore) OnTenantChange(fn func(tenantID string)) {
	s.mu.Lock()
	s.onTenantChange = fn
	s.mu.Unlock()
}

// Init rehydrates the session from an existing cookie by asking the server
// who we are. Any failure leaves the session cleared.
func (s *SessionStore) Init(ctx context.Context) {
	user, err := s.client.Me(ctx)
	if err != nil {
		s.setUser(nil)
		return
	}
	s.setUser(user)
}

// Login authenticates with email and password. It returns false on any
// failure, leaving the session cleared.
func (s *SessionStore) Login(ctx context.Context, email, password string) bool {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.setUser(nil)
		return false
	}
	s.setUser(user)
	return true
}

// Register creates a new agency and signs in as its admin. It returns false
// on any failure, leaving the session cleared.
func (s *SessionStore) Register(ctx context.Context, name, email, password, agencyName string) bool {
	user, err := s.client.Register(ctx, name, email, password, agencyName)
	if err != nil {
		s.setUser(nil)
		return false
	}
	s.setUser(user)
	return true
}

// Logout revokes the session server-side and clears local state. The local
// state is cleared even when the request fails.
func (s *SessionStore) Logout(ctx context.Context) {
	_ = s.client.Logout(ctx)
	s.setUser(nil)
}

// User returns a copy of the authenticated user, or nil.
func (s *SessionStore) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// TenantID returns the tenant of the authenticated user, or "".
func (s *SessionStore) TenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.TenantID
}

// IsAuthenticated reports whether a user is signed in.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// IsLoading reports whether Init has settled yet.
func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// setUser replaces the session state and fires the tenant hook when the
// tenant actually changed. The hook runs outside the lock.
func (s *SessionStore) setUser(user *User) {
	s.mu.Lock()
	s.user = user
	s.loading = false

	tenantID := ""
	if user != nil {
		tenantID = user.TenantID
	}
	changed := tenantID != s.lastTenant
	s.lastTenant = tenantID
	fn := s.onTenantChange
	s.mu.Unlock()

	if changed && fn != nil {
		fn(tenantID)
	}
}
