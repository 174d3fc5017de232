package store

import (
	"context"
	"errors"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Sessions() Sessions
	Tenants() Tenants
	Leads() Leads
	Campaigns() Campaigns
	Appointments() Appointments
	Staff() Staff
	Transactions() Transactions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn returns
	// an error and committing otherwise. Preferred over Tx for most callers.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login; email is unique across tenants.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions purges sessions past their expiry; returns the
	// number removed. Called by the housekeeping service.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Tenants interface {
	GetTenantByID(ctx context.Context, id string) (domain.Tenant, error)
	CreateTenant(ctx context.Context, t domain.Tenant) error

	// AddCredits adjusts the credit balance by delta (may be negative).
	AddCredits(ctx context.Context, tenantID string, delta int64) error

	// IncrementMessagesSent bumps the lifetime message counter.
	IncrementMessagesSent(ctx context.Context, tenantID string, n int64) error
}

// StatusCount is one bucket of a grouped count query.
type StatusCount struct {
	Status string
	Count  int64
}

// BucketCount is one time bucket of a grouped count query; Bucket is a
// date (YYYY-MM-DD) or month (YYYY-MM) key depending on the query.
type BucketCount struct {
	Bucket string
	Count  int64
}

type Leads interface {
	ListLeads(ctx context.Context, tenantID string) ([]domain.Lead, error)
	GetLeadByID(ctx context.Context, tenantID, id string) (domain.Lead, error)
	CreateLead(ctx context.Context, l domain.Lead) error
	UpdateLead(ctx context.Context, l domain.Lead) error
	DeleteLead(ctx context.Context, tenantID, id string) error

	CountLeads(ctx context.Context, tenantID string) (int64, error)
	CountLeadsByStatus(ctx context.Context, tenantID string) ([]StatusCount, error)
	CountLeadsSince(ctx context.Context, tenantID string, since time.Time) (int64, error)

	// DailyLeadCounts groups new leads per day since the given time.
	DailyLeadCounts(ctx context.Context, tenantID string, since time.Time) ([]BucketCount, error)

	// MonthlyLeadCounts groups new leads per month since the given time.
	MonthlyLeadCounts(ctx context.Context, tenantID string, since time.Time) ([]BucketCount, error)
}

type Campaigns interface {
	ListCampaigns(ctx context.Context, tenantID string) ([]domain.Campaign, error)
	GetCampaignByID(ctx context.Context, tenantID, id string) (domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	UpdateCampaignStatus(ctx context.Context, tenantID, id, status string) error
	DeleteCampaign(ctx context.Context, tenantID, id string) error
	CountActiveCampaigns(ctx context.Context, tenantID string) (int64, error)
}

type Appointments interface {
	ListAppointments(ctx context.Context, tenantID string) ([]domain.Appointment, error)
	CreateAppointment(ctx context.Context, a domain.Appointment) error

	// CountUpcomingAppointments counts scheduled appointments on or after the
	// given date (YYYY-MM-DD).
	CountUpcomingAppointments(ctx context.Context, tenantID, fromDate string) (int64, error)
}

type Staff interface {
	ListStaff(ctx context.Context, tenantID string) ([]domain.Staff, error)
	CreateStaff(ctx context.Context, s domain.Staff) error
}

type Transactions interface {
	ListTransactions(ctx context.Context, tenantID string) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, t domain.Transaction) error

	// GetTransactionByReference finds a transaction by its payment-gateway
	// order reference.
	GetTransactionByReference(ctx context.Context, tenantID, reference string) (domain.Transaction, error)

	// UpdateTransactionStatus moves a transaction to its terminal status.
	UpdateTransactionStatus(ctx context.Context, tenantID, id, status string) error

	// MonthlyUsageCounts groups usage transactions per month since the given
	// time, feeding the monthly performance chart.
	MonthlyUsageCounts(ctx context.Context, tenantID string, since time.Time) ([]BucketCount, error)
}
