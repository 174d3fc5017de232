package domain

import "time"

// Lead is a prospective customer tracked through the sales funnel.
type Lead struct {
	ID          string
	TenantID    string
	Name        string
	Email       string
	Phone       string
	Status      string // new, interested, appointment, closed, lost
	Score       int
	Source      string
	Property    string
	Budget      string
	Notes       string
	AssignedTo  string
	LastContact time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	LeadStatusNew         = "new"
	LeadStatusInterested  = "interested"
	LeadStatusAppointment = "appointment"
	LeadStatusClosed      = "closed"
	LeadStatusLost        = "lost"
)

// ValidLeadStatus reports whether s is one of the funnel statuses.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusInterested, LeadStatusAppointment, LeadStatusClosed, LeadStatusLost:
		return true
	}
	return false
}
