package domain

// DashboardStats are the headline numbers on the dashboard.
type DashboardStats struct {
	Credits              int64   `json:"credits"`
	MessagesSent         int64   `json:"messagesSent"`
	NewLeads             int64   `json:"newLeads"`
	UpcomingAppointments int64   `json:"upcomingAppointments"`
	ConversionRate       float64 `json:"conversionRate"`
	ActiveCampaigns      int64   `json:"activeCampaigns"`
}

// ChartPoint is one point of a dashboard series. Value2 carries the second
// series of the monthly performance chart.
type ChartPoint struct {
	Name   string `json:"name"`
	Value  int64  `json:"value"`
	Value2 int64  `json:"value2,omitempty"`
}

// DashboardCharts bundles the three dashboard series.
type DashboardCharts struct {
	LeadsTrend         []ChartPoint `json:"leadsTrend"`
	MonthlyPerformance []ChartPoint `json:"monthlyPerformance"`
	LeadsByStatus      []ChartPoint `json:"leadsByStatus"`
}
