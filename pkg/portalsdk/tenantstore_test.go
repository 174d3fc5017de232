package portalsdk

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newFakeWorkspace serves the tenant data endpoints. Leads are served as a
// bare array and campaigns inside the envelope, to exercise both list shapes.
// Paths listed in fail return 500.
func newFakeWorkspace(fail map[string]bool) http.Handler {
	mux := http.NewServeMux()

	serve := func(path string, payload func() any) {
		mux.HandleFunc("GET "+path, func(w http.ResponseWriter, r *http.Request) {
			if fail[path] {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "boom"})
				return
			}
			_ = json.NewEncoder(w).Encode(payload())
		})
	}

	serve("/api/tenant", func() any {
		return map[string]any{"success": true, "data": Tenant{ID: "tenant_1", Name: "Jane Realty", Credits: 42}}
	})
	serve("/api/dashboard/stats", func() any {
		return map[string]any{"success": true, "data": DashboardStats{Credits: 42, NewLeads: 2}}
	})
	serve("/api/dashboard/charts", func() any {
		return map[string]any{"success": true, "data": DashboardCharts{
			LeadsTrend: []ChartPoint{{Name: "Mon", Value: 1}},
		}}
	})
	serve("/api/leads", func() any {
		// Bare array, the legacy list shape.
		return []Lead{{ID: "lead_1", Name: "Amy", Phone: "+9111"}, {ID: "lead_2", Name: "Raj"}}
	})
	serve("/api/appointments", func() any {
		return map[string]any{"success": true, "data": []Appointment{{ID: "appt_1", LeadName: "Amy"}}}
	})
	serve("/api/staff", func() any {
		return map[string]any{"success": true, "data": []StaffMember{{ID: "staff_1", Name: "Jane"}}}
	})
	serve("/api/campaigns", func() any {
		return map[string]any{"success": true, "data": []Campaign{{ID: "camp_1", Name: "Diwali Promo"}}}
	})
	serve("/api/transactions", func() any {
		return map[string]any{"success": true, "data": []Transaction{{ID: "txn_1", Type: "purchase"}}}
	})

	return mux
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTenantStoreLoadsEverything(t *testing.T) {
	server := httptest.NewServer(newFakeWorkspace(nil))
	defer server.Close()

	store := NewTenantStore(NewClient(server.URL))
	store.Logger = discardLogger()
	store.SetTenant(context.Background(), "tenant_1")

	require.Equal(t, "tenant_1", store.TenantID())

	tenant := store.Tenant()
	require.NotNil(t, tenant)
	require.Equal(t, "Jane Realty", tenant.Name)
	require.EqualValues(t, 42, tenant.Credits)

	stats := store.Stats()
	require.NotNil(t, stats)
	require.EqualValues(t, 2, stats.NewLeads)

	charts := store.Charts()
	require.NotNil(t, charts)
	require.Len(t, charts.LeadsTrend, 1)

	require.Len(t, store.Leads(), 2, "bare-array lists decode too")
	require.Len(t, store.Appointments(), 1)
	require.Len(t, store.Staff(), 1)
	require.Len(t, store.Campaigns(), 1)
	require.Len(t, store.Transactions(), 1)
}

func TestTenantStoreFailureIsolation(t *testing.T) {
	server := httptest.NewServer(newFakeWorkspace(map[string]bool{
		"/api/leads":           true,
		"/api/dashboard/stats": true,
	}))
	defer server.Close()

	store := NewTenantStore(NewClient(server.URL))
	store.Logger = discardLogger()
	store.SetTenant(context.Background(), "tenant_1")

	require.Empty(t, store.Leads(), "failed fetch resets only its own slice")
	require.Nil(t, store.Stats())

	require.NotNil(t, store.Tenant(), "other fetches still land")
	require.Len(t, store.Campaigns(), 1)
	require.Len(t, store.Transactions(), 1)
}

func TestTenantStoreClear(t *testing.T) {
	server := httptest.NewServer(newFakeWorkspace(nil))
	defer server.Close()

	store := NewTenantStore(NewClient(server.URL))
	store.Logger = discardLogger()
	ctx := context.Background()

	store.SetTenant(ctx, "tenant_1")
	require.NotEmpty(t, store.Leads())

	// Empty id clears synchronously, no requests involved.
	store.SetTenant(ctx, "")
	require.Empty(t, store.TenantID())
	require.Nil(t, store.Tenant())
	require.Nil(t, store.Stats())
	require.Nil(t, store.Charts())
	require.Empty(t, store.Leads())
	require.Empty(t, store.Campaigns())
}

func TestTenantStoreRefreshCampaigns(t *testing.T) {
	fail := map[string]bool{"/api/campaigns": true}
	server := httptest.NewServer(newFakeWorkspace(fail))
	defer server.Close()

	store := NewTenantStore(NewClient(server.URL))
	store.Logger = discardLogger()
	ctx := context.Background()

	store.SetTenant(ctx, "tenant_1")
	require.Empty(t, store.Campaigns())

	fail["/api/campaigns"] = false
	store.RefreshCampaigns(ctx)
	require.Len(t, store.Campaigns(), 1)
	require.Len(t, store.Leads(), 2, "refresh touches only the campaign slice")
}

func TestTenantStoreAccessorsReturnCopies(t *testing.T) {
	server := httptest.NewServer(newFakeWorkspace(nil))
	defer server.Close()

	store := NewTenantStore(NewClient(server.URL))
	store.Logger = discardLogger()
	store.SetTenant(context.Background(), "tenant_1")

	leads := store.Leads()
	leads[0].Name = "mutated"
	require.Equal(t, "Amy", store.Leads()[0].Name)

	tenant := store.Tenant()
	tenant.Name = "mutated"
	require.Equal(t, "Jane Realty", store.Tenant().Name)
}

func TestDecodeListShapes(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		items, err := decodeList[Lead]([]byte(`[{"id":"lead_1"}]`))
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("envelope", func(t *testing.T) {
		items, err := decodeList[Lead]([]byte(`{"success":true,"data":[{"id":"lead_1"}]}`))
		require.NoError(t, err)
		require.Len(t, items, 1)
	})

	t.Run("envelope without success flag", func(t *testing.T) {
		items, err := decodeList[Lead]([]byte(`{"data":[{"id":"lead_1"},{"id":"lead_2"}]}`))
		require.NoError(t, err)
		require.Len(t, items, 2)
	})

	t.Run("envelope with no data", func(t *testing.T) {
		items, err := decodeList[Lead]([]byte(`{"success":true}`))
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := decodeList[Lead]([]byte(`"nope"`))
		require.Error(t, err)
	})
}
