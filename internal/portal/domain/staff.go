package domain

import "time"

type Staff struct {
	ID       string
	TenantID string
	Name     string
	Email    string
	Role     string // admin, manager, agent
	Avatar   string
	Status   string // active, inactive
	Phone    string
	JoinedAt time.Time
}

const (
	StaffStatusActive   = "active"
	StaffStatusInactive = "inactive"
)
