package service

import (
	"context"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/cache"
	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

const (
	leadsTrendDays       = 7
	performanceMonths    = 6
	newLeadWindow        = 7 * 24 * time.Hour
	dashboardCacheTTL    = time.Minute
	dashboardStatsCache  = "dashboard:stats:"
	dashboardChartsCache = "dashboard:charts:"
)

func dashboardStatsKey(tenantID string) string  { return dashboardStatsCache + tenantID }
func dashboardChartsKey(tenantID string) string { return dashboardChartsCache + tenantID }

type DashboardService struct {
	Store store.Store
	Cache *cache.Cache
}

// Stats assembles the headline dashboard numbers. Results are cached briefly
// since the dashboard polls and every number is derived from counts.
func (s *DashboardService) Stats(ctx context.Context, tenantID string) (domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.Cache.GetJSON(ctx, dashboardStatsKey(tenantID), &stats); err == nil {
		return stats, nil
	}

	tenant, err := s.Store.Tenants().GetTenantByID(ctx, tenantID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	now := time.Now().UTC()
	// "New" means created in the trailing week, matching the trend chart.
	newLeads, err := s.Store.Leads().CountLeadsSince(ctx, tenantID, now.Add(-newLeadWindow))
	if err != nil {
		return domain.DashboardStats{}, err
	}

	upcoming, err := s.Store.Appointments().CountUpcomingAppointments(ctx, tenantID, now.Format("2006-01-02"))
	if err != nil {
		return domain.DashboardStats{}, err
	}

	active, err := s.Store.Campaigns().CountActiveCampaigns(ctx, tenantID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	rate, err := s.conversionRate(ctx, tenantID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	stats = domain.DashboardStats{
		Credits:              tenant.Credits,
		MessagesSent:         tenant.TotalMessagesSent,
		NewLeads:             newLeads,
		UpcomingAppointments: upcoming,
		ConversionRate:       rate,
		ActiveCampaigns:      active,
	}

	if err := s.Cache.SetJSON(ctx, dashboardStatsKey(tenantID), stats, dashboardCacheTTL); err != nil {
		slogx.FromContext(ctx).Warn("dashboard stats cache write failed", "err", err)
	}
	return stats, nil
}

// Charts assembles the three dashboard series. Buckets with no data are
// zero-filled so the charts always span their full window.
func (s *DashboardService) Charts(ctx context.Context, tenantID string) (domain.DashboardCharts, error) {
	var charts domain.DashboardCharts
	if err := s.Cache.GetJSON(ctx, dashboardChartsKey(tenantID), &charts); err == nil {
		return charts, nil
	}

	now := time.Now().UTC()

	trend, err := s.leadsTrend(ctx, tenantID, now)
	if err != nil {
		return domain.DashboardCharts{}, err
	}

	perf, err := s.monthlyPerformance(ctx, tenantID, now)
	if err != nil {
		return domain.DashboardCharts{}, err
	}

	byStatus, err := s.leadsByStatus(ctx, tenantID)
	if err != nil {
		return domain.DashboardCharts{}, err
	}

	charts = domain.DashboardCharts{
		LeadsTrend:         trend,
		MonthlyPerformance: perf,
		LeadsByStatus:      byStatus,
	}

	if err := s.Cache.SetJSON(ctx, dashboardChartsKey(tenantID), charts, dashboardCacheTTL); err != nil {
		slogx.FromContext(ctx).Warn("dashboard charts cache write failed", "err", err)
	}
	return charts, nil
}

func (s *DashboardService) conversionRate(ctx context.Context, tenantID string) (float64, error) {
	total, err := s.Store.Leads().CountLeads(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	byStatus, err := s.Store.Leads().CountLeadsByStatus(ctx, tenantID)
	if err != nil {
		return 0, err
	}

	var closed int64
	for _, c := range byStatus {
		if c.Status == domain.LeadStatusClosed {
			closed = c.Count
		}
	}
	return float64(closed) / float64(total) * 100, nil
}

// leadsTrend is one point per day for the last 7 days, labelled by weekday.
func (s *DashboardService) leadsTrend(ctx context.Context, tenantID string, now time.Time) ([]domain.ChartPoint, error) {
	start := now.AddDate(0, 0, -(leadsTrendDays - 1)).Truncate(24 * time.Hour)

	counts, err := s.Store.Leads().DailyLeadCounts(ctx, tenantID, start)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]int64, len(counts))
	for _, c := range counts {
		byDay[c.Bucket] = c.Count
	}

	points := make([]domain.ChartPoint, 0, leadsTrendDays)
	for i := 0; i < leadsTrendDays; i++ {
		day := start.AddDate(0, 0, i)
		points = append(points, domain.ChartPoint{
			Name:  day.Format("Mon"),
			Value: byDay[day.Format("2006-01-02")],
		})
	}
	return points, nil
}

// monthlyPerformance pairs new leads (Value) with message usage (Value2) per
// month for the last 6 months, labelled by short month name.
func (s *DashboardService) monthlyPerformance(ctx context.Context, tenantID string, now time.Time) ([]domain.ChartPoint, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(performanceMonths - 1), 0)

	leadCounts, err := s.Store.Leads().MonthlyLeadCounts(ctx, tenantID, start)
	if err != nil {
		return nil, err
	}
	usageCounts, err := s.Store.Transactions().MonthlyUsageCounts(ctx, tenantID, start)
	if err != nil {
		return nil, err
	}

	leadsByMonth := make(map[string]int64, len(leadCounts))
	for _, c := range leadCounts {
		leadsByMonth[c.Bucket] = c.Count
	}
	usageByMonth := make(map[string]int64, len(usageCounts))
	for _, c := range usageCounts {
		usageByMonth[c.Bucket] = c.Count
	}

	points := make([]domain.ChartPoint, 0, performanceMonths)
	for i := 0; i < performanceMonths; i++ {
		month := start.AddDate(0, i, 0)
		key := month.Format("2006-01")
		points = append(points, domain.ChartPoint{
			Name:   month.Format("Jan"),
			Value:  leadsByMonth[key],
			Value2: usageByMonth[key],
		})
	}
	return points, nil
}

// leadsByStatus includes every funnel status, zero-filled, in funnel order.
func (s *DashboardService) leadsByStatus(ctx context.Context, tenantID string) ([]domain.ChartPoint, error) {
	counts, err := s.Store.Leads().CountLeadsByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	order := []string{
		domain.LeadStatusNew,
		domain.LeadStatusInterested,
		domain.LeadStatusAppointment,
		domain.LeadStatusClosed,
		domain.LeadStatusLost,
	}
	points := make([]domain.ChartPoint, 0, len(order))
	for _, status := range order {
		points = append(points, domain.ChartPoint{Name: statusLabel(status), Value: byStatus[status]})
	}
	return points, nil
}

func statusLabel(status string) string {
	if status == "" {
		return status
	}
	return string(status[0]-'a'+'A') + status[1:]
}
