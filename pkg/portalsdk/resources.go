package portalsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetTenant returns the agency workspace of the current session.
func (c *Client) GetTenant(ctx context.Context) (*Tenant, error) {
	var tenant Tenant
	if err := c.getData(ctx, "/api/tenant", &tenant); err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetDashboardStats returns the headline dashboard numbers.
func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.getData(ctx, "/api/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetDashboardCharts returns the dashboard chart series.
func (c *Client) GetDashboardCharts(ctx context.Context) (*DashboardCharts, error) {
	var charts DashboardCharts
	if err := c.getData(ctx, "/api/dashboard/charts", &charts); err != nil {
		return nil, err
	}
	return &charts, nil
}

// ListLeads returns the tenant's leads, newest first.
func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	return fetchList[Lead](ctx, c, "/api/leads")
}

// LeadInput carries the writable fields of a lead.
type LeadInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	Score      int    `json:"score"`
	Source     string `json:"source"`
	Property   string `json:"property"`
	Budget     string `json:"budget"`
	Notes      string `json:"notes"`
	AssignedTo string `json:"assignedTo"`
}

// CreateLead adds a lead to the tenant's funnel.
func (c *Client) CreateLead(ctx context.Context, input LeadInput) (*Lead, error) {
	return postData[Lead](ctx, c, "/api/leads", input)
}

// UpdateLead replaces the writable fields of a lead.
func (c *Client) UpdateLead(ctx context.Context, id string, input LeadInput) (*Lead, error) {
	var env Envelope
	if err := c.doJSON(ctx, http.MethodPut, "/api/leads/"+id, input, &env); err != nil {
		return nil, err
	}
	return decodeData[Lead](env)
}

// DeleteLead removes a lead.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/leads/"+id, nil, nil)
}

// ListAppointments returns the tenant's appointments in calendar order.
func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	return fetchList[Appointment](ctx, c, "/api/appointments")
}

// AppointmentInput carries the writable fields of an appointment. Date is
// YYYY-MM-DD, Time is HH:MM.
type AppointmentInput struct {
	LeadID   string `json:"leadId"`
	LeadName string `json:"leadName"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Property string `json:"property"`
	Agent    string `json:"agent"`
	Notes    string `json:"notes"`
}

// CreateAppointment schedules a meeting or site visit for a lead.
func (c *Client) CreateAppointment(ctx context.Context, input AppointmentInput) (*Appointment, error) {
	return postData[Appointment](ctx, c, "/api/appointments", input)
}

// ListStaff returns the agency team.
func (c *Client) ListStaff(ctx context.Context) ([]StaffMember, error) {
	return fetchList[StaffMember](ctx, c, "/api/staff")
}

// ListCampaigns returns the tenant's campaigns, newest first.
func (c *Client) ListCampaigns(ctx context.Context) ([]Campaign, error) {
	return fetchList[Campaign](ctx, c, "/api/campaigns")
}

// CampaignInput carries the writable fields of a campaign.
type CampaignInput struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	TemplateName   string `json:"templateName"`
	TargetAudience string `json:"targetAudience"`
	Message        string `json:"message"`
}

// CreateCampaign adds a draft campaign.
func (c *Client) CreateCampaign(ctx context.Context, input CampaignInput) (*Campaign, error) {
	return postData[Campaign](ctx, c, "/api/campaigns", input)
}

// DeleteCampaign removes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/campaigns/"+id, nil, nil)
}

// SubmitTemplate submits a draft campaign's template for approval.
func (c *Client) SubmitTemplate(ctx context.Context, id string) (*Campaign, error) {
	var env Envelope
	if err := c.doJSON(ctx, http.MethodPost, "/api/campaigns/"+id+"/submit-template", nil, &env); err != nil {
		return nil, err
	}
	return decodeData[Campaign](env)
}

// ListTransactions returns the tenant's billing history, newest first.
func (c *Client) ListTransactions(ctx context.Context) ([]Transaction, error) {
	return fetchList[Transaction](ctx, c, "/api/transactions")
}

// postData posts a body and decodes the envelope's data field.
func postData[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var env Envelope
	if err := c.doJSON(ctx, http.MethodPost, path, body, &env); err != nil {
		return nil, err
	}
	return decodeData[T](env)
}

// decodeData decodes an envelope's data field into T.
func decodeData[T any](env Envelope) (*T, error) {
	var out T
	if len(env.Data) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response data: %w", err)
	}
	return &out, nil
}
