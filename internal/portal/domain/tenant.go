package domain

import "time"

// Tenant is one customer organisation (a real-estate agency). All portal data
// is scoped to exactly one tenant per session.
type Tenant struct {
	ID                string
	Name              string
	Logo              string // single display glyph, e.g. an emoji
	Email             string
	Phone             string
	Address           string
	Industry          string
	Credits           int64
	TotalMessagesSent int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
