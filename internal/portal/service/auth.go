package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/mail"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/cryptox"
	"github.com/venturebothq/venturebot/pkg/idx"
	"github.com/venturebothq/venturebot/pkg/jwtx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrSessionExpired     = errors.New("session_expired")
)

// StarterCredits is granted to every new tenant at registration.
const StarterCredits = 100

type AuthService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	Mailer     *mail.Mailer
	SessionTTL time.Duration
}

// Register creates a tenant, its admin user and an initial session in one
// transaction. Returns the user and a signed session token for the cookie.
func (s *AuthService) Register(ctx context.Context, name, email, password, agencyName string) (domain.User, string, error) {
	l := slogx.FromContext(ctx)
	email = normalizeEmail(email)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	tenant := domain.Tenant{
		ID:        idx.New().String(),
		Name:      agencyName,
		Logo:      "🏠",
		Email:     email,
		Industry:  "Real Estate",
		Credits:   StarterCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user := domain.User{
		ID:           idx.New().String(),
		TenantID:     tenant.ID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TenantID:  tenant.ID,
		ExpiresAt: now.Add(s.SessionTTL),
		CreatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tenants().CreateTenant(ctx, tenant); err != nil {
			return err
		}
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return tx.Sessions().CreateSession(ctx, session)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, "", ErrEmailTaken
	}
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.Signer.Sign(session.ID, user.ID, tenant.ID, session.ExpiresAt)
	if err != nil {
		return domain.User{}, "", err
	}

	if s.Mailer.Enabled() {
		// Best effort; registration must not fail on mail trouble.
		if err := s.Mailer.SendWelcome(user.Email, user.Name, tenant.Name); err != nil {
			l.Warn("welcome email failed", "err", err)
		}
	}

	l.Info("tenant registered", "tenant_id", tenant.ID, "user_id", user.ID)
	return user, token, nil
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		// Burn time so missing accounts are indistinguishable from bad
		// passwords.
		_ = cryptox.VerifyPassword(password, dummyHash)
		return domain.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TenantID:  user.TenantID,
		ExpiresAt: now.Add(s.SessionTTL),
		CreatedAt: now,
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.Signer.Sign(session.ID, user.ID, user.TenantID, session.ExpiresAt)
	if err != nil {
		return domain.User{}, "", err
	}

	slogx.FromContext(ctx).Info("user logged in", "user_id", user.ID, "tenant_id", user.TenantID)
	return user, token, nil
}

// Logout revokes the session row, invalidating the cookie token immediately.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Store.Sessions().DeleteSession(ctx, sessionID)
}

// AuthenticateSession validates a cookie token and confirms the session row
// still exists and has not expired. The row is authoritative: a valid token
// whose session was deleted is rejected.
func (s *AuthService) AuthenticateSession(ctx context.Context, token string) (sessionID, userID, tenantID string, err error) {
	claims, err := s.Signer.Verify(token)
	if err != nil {
		return "", "", "", err
	}

	session, err := s.Store.Sessions().GetSessionByID(ctx, claims.SessionID)
	if err != nil {
		return "", "", "", err
	}
	if time.Now().After(session.ExpiresAt) {
		return "", "", "", ErrSessionExpired
	}

	return session.ID, session.UserID, session.TenantID, nil
}

// GetUserByID fetches a user by id.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dummyHash is a throwaway argon2id hash used to equalise login timing for
// unknown emails.
var dummyHash = func() string {
	h, err := cryptox.HashPassword("decoy-password")
	if err != nil {
		slog.Error("failed to prepare decoy hash", "err", err)
		return "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	}
	return h
}()
