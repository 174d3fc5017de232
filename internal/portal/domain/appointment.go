package domain

import "time"

type Appointment struct {
	ID        string
	TenantID  string
	LeadID    string
	LeadName  string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Type      string // site-visit, virtual-tour, meeting, follow-up
	Status    string // scheduled, completed, cancelled, rescheduled
	Property  string
	Agent     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	AppointmentStatusScheduled   = "scheduled"
	AppointmentStatusCompleted   = "completed"
	AppointmentStatusCancelled   = "cancelled"
	AppointmentStatusRescheduled = "rescheduled"
)
