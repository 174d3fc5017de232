package portalsdk

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// TenantStore holds all workspace data for the active tenant: the tenant
// record, dashboard numbers and every listing the portal shows. It is the
// client-side mirror of the API, loaded wholesale when the tenant changes.
//
// Loads are best-effort per slice. A fetch that fails resets only its own
// slice and logs a warning; everything else still loads. There is no retry
// and no error surfaces to the caller.
type TenantStore struct {
	client *Client

	// Logger overrides slog.Default for load warnings.
	Logger *slog.Logger

	mu           sync.RWMutex
	tenantID     string
	tenant       *Tenant
	stats        *DashboardStats
	charts       *DashboardCharts
	leads        []Lead
	appointments []Appointment
	staff        []StaffMember
	campaigns    []Campaign
	transactions []Transaction
}

// NewTenantStore creates a tenant store around client. Wire it to a
// SessionStore via OnTenantChange so tenant switches trigger loads.
func NewTenantStore(client *Client) *TenantStore {
	return &TenantStore{client: client}
}

// SetTenant switches the store to a tenant. An empty id clears every slice
// synchronously; a non-empty id reloads everything. Re-running with the same
// id reloads; last fetch wins.
func (t *TenantStore) SetTenant(ctx context.Context, id string) {
	t.mu.Lock()
	t.tenantID = id
	t.mu.Unlock()

	if id == "" {
		t.clear()
		return
	}
	t.load(ctx)
}

// TenantID returns the tenant the store is currently bound to.
func (t *TenantStore) TenantID() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tenantID
}

// RefreshCampaigns re-fetches only the campaign list, for after a dispatch
// run or a template submission.
func (t *TenantStore) RefreshCampaigns(ctx context.Context) {
	campaigns, err := t.client.ListCampaigns(ctx)
	if err != nil {
		t.logger().Warn("failed to load campaigns", "error", err)
		campaigns = nil
	}
	t.mu.Lock()
	t.campaigns = campaigns
	t.mu.Unlock()
}

// load runs the fixed fetch sequence. Each fetch stands alone: a failure
// zeroes its own slice and never blocks the rest.
func (t *TenantStore) load(ctx context.Context) {
	tenant, err := t.client.GetTenant(ctx)
	if err != nil {
		t.logger().Warn("failed to load tenant", "error", err)
		tenant = nil
	}
	t.mu.Lock()
	t.tenant = tenant
	t.mu.Unlock()

	stats, err := t.client.GetDashboardStats(ctx)
	if err != nil {
		t.logger().Warn("failed to load dashboard stats", "error", err)
		stats = nil
	}
	t.mu.Lock()
	t.stats = stats
	t.mu.Unlock()

	charts, err := t.client.GetDashboardCharts(ctx)
	if err != nil {
		t.logger().Warn("failed to load dashboard charts", "error", err)
		charts = nil
	}
	t.mu.Lock()
	t.charts = charts
	t.mu.Unlock()

	leads, err := t.client.ListLeads(ctx)
	if err != nil {
		t.logger().Warn("failed to load leads", "error", err)
		leads = nil
	}
	t.mu.Lock()
	t.leads = leads
	t.mu.Unlock()

	appointments, err := t.client.ListAppointments(ctx)
	if err != nil {
		t.logger().Warn("failed to load appointments", "error", err)
		appointments = nil
	}
	t.mu.Lock()
	t.appointments = appointments
	t.mu.Unlock()

	staff, err := t.client.ListStaff(ctx)
	if err != nil {
		t.logger().Warn("failed to load staff", "error", err)
		staff = nil
	}
	t.mu.Lock()
	t.staff = staff
	t.mu.Unlock()

	t.RefreshCampaigns(ctx)

	transactions, err := t.client.ListTransactions(ctx)
	if err != nil {
		t.logger().Warn("failed to load transactions", "error", err)
		transactions = nil
	}
	t.mu.Lock()
	t.transactions = transactions
	t.mu.Unlock()
}

func (t *TenantStore) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tenant = nil
	t.stats = nil
	t.charts = nil
	t.leads = nil
	t.appointments = nil
	t.staff = nil
	t.campaigns = nil
	t.transactions = nil
}

// Tenant returns a copy of the tenant record, or nil when not loaded.
func (t *TenantStore) Tenant() *Tenant {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.tenant == nil {
		return nil
	}
	tenant := *t.tenant
	return &tenant
}

// Stats returns a copy of the dashboard numbers, or nil when not loaded.
func (t *TenantStore) Stats() *DashboardStats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.stats == nil {
		return nil
	}
	stats := *t.stats
	return &stats
}

// Charts returns a deep copy of the chart series, or nil when not loaded.
func (t *TenantStore) Charts() *DashboardCharts {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.charts == nil {
		return nil
	}
	return &DashboardCharts{
		LeadsTrend:         slices.Clone(t.charts.LeadsTrend),
		MonthlyPerformance: slices.Clone(t.charts.MonthlyPerformance),
		LeadsByStatus:      slices.Clone(t.charts.LeadsByStatus),
	}
}

// Leads returns a copy of the lead list.
func (t *TenantStore) Leads() []Lead {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.leads)
}

// Appointments returns a copy of the appointment list.
func (t *TenantStore) Appointments() []Appointment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.appointments)
}

// Staff returns a copy of the staff list.
func (t *TenantStore) Staff() []StaffMember {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.staff)
}

// Campaigns returns a copy of the campaign list.
func (t *TenantStore) Campaigns() []Campaign {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.campaigns)
}

// Transactions returns a copy of the billing history.
func (t *TenantStore) Transactions() []Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.transactions)
}

func (t *TenantStore) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}
