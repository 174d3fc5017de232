package domain

import "time"

type User struct {
	ID           string
	TenantID     string
	Name         string
	Email        string
	PasswordHash string // argon2id encoded
	Role         string // admin, manager, agent
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a server-side login session. The cookie token references it by
// id; deleting the row revokes the session immediately.
type Session struct {
	ID        string
	UserID    string
	TenantID  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
)
