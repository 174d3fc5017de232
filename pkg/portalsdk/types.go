package portalsdk

import "encoding/json"

// Envelope is the portal's standard response wrapper. Data is left raw so
// callers can decode into the shape they expect.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// User is the authenticated portal user.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}

// Tenant is the agency workspace the session is scoped to.
type Tenant struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Logo              string `json:"logo"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Industry          string `json:"industry"`
	Credits           int64  `json:"credits"`
	TotalMessagesSent int64  `json:"totalMessagesSent"`
}

// Lead is one prospect in the CRM funnel.
type Lead struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Status      string `json:"status"`
	Score       int    `json:"score"`
	Source      string `json:"source"`
	Property    string `json:"property"`
	Budget      string `json:"budget"`
	Notes       string `json:"notes"`
	AssignedTo  string `json:"assignedTo"`
	LastContact string `json:"lastContact"`
	CreatedAt   string `json:"createdAt"`
}

// Campaign is one outbound messaging campaign.
type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	TemplateName   string `json:"templateName"`
	TargetAudience string `json:"targetAudience"`
	Message        string `json:"message"`
	Status         string `json:"status"`
	MessagesSent   int64  `json:"messagesSent"`
	Opens          int64  `json:"opens"`
	Replies        int64  `json:"replies"`
	CreatedAt      string `json:"createdAt"`
}

// Appointment is one scheduled lead meeting or site visit.
type Appointment struct {
	ID       string `json:"id"`
	LeadID   string `json:"leadId"`
	LeadName string `json:"leadName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Property string `json:"property"`
	Agent    string `json:"agent"`
	Notes    string `json:"notes"`
}

// StaffMember is one member of the agency team.
type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
	Phone    string `json:"phone"`
	JoinedAt string `json:"joinedAt"`
}

// Transaction is one billing ledger entry.
type Transaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Credits     int64  `json:"credits"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Reference   string `json:"reference"`
	Date        string `json:"date"`
}

// DashboardStats are the headline dashboard numbers.
type DashboardStats struct {
	Credits              int64   `json:"credits"`
	MessagesSent         int64   `json:"messagesSent"`
	NewLeads             int64   `json:"newLeads"`
	UpcomingAppointments int64   `json:"upcomingAppointments"`
	ConversionRate       float64 `json:"conversionRate"`
	ActiveCampaigns      int64   `json:"activeCampaigns"`
}

// ChartPoint is one point of a dashboard chart series.
type ChartPoint struct {
	Name   string `json:"name"`
	Value  int64  `json:"value"`
	Value2 int64  `json:"value2,omitempty"`
}

// DashboardCharts bundles the dashboard's chart series.
type DashboardCharts struct {
	LeadsTrend         []ChartPoint `json:"leadsTrend"`
	MonthlyPerformance []ChartPoint `json:"monthlyPerformance"`
	LeadsByStatus      []ChartPoint `json:"leadsByStatus"`
}

// Order is a payment-gateway checkout order.
type Order struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	KeyID       string `json:"keyId"`
	PackageInfo string `json:"packageInfo"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
