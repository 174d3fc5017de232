package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedTenant(t *testing.T, s *Store, id string) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, s.Tenants().CreateTenant(context.Background(), domain.Tenant{
		ID:        id,
		Name:      "Prime Properties",
		Logo:      "🏠",
		Email:     "hello@primeproperties.example",
		Credits:   100,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func TestUsersRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	now := time.Now().UTC()
	u := domain.User{
		ID:           "usr_1",
		TenantID:     "tnt_1",
		Name:         "Priya Sharma",
		Email:        "priya@primeproperties.example",
		PasswordHash: "argon2id$stub",
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	t.Run("lookup by id and email", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, "usr_1")
		require.NoError(t, err)
		require.Equal(t, u.Email, got.Email)

		got, err = s.Users().GetUserByEmail(ctx, u.Email)
		require.NoError(t, err)
		require.Equal(t, "usr_1", got.ID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := u
		dup.ID = "usr_2"
		require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("missing user maps to ErrNotFound", func(t *testing.T) {
		_, err := s.Users().GetUserByID(ctx, "usr_missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestSessionsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	now := time.Now().UTC()
	require.NoError(t, s.Users().CreateUser(ctx, domain.User{
		ID: "usr_1", TenantID: "tnt_1", Name: "a", Email: "a@example.com",
		PasswordHash: "x", Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now,
	}))

	live := domain.Session{ID: "ses_live", UserID: "usr_1", TenantID: "tnt_1",
		ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	stale := domain.Session{ID: "ses_stale", UserID: "usr_1", TenantID: "tnt_1",
		ExpiresAt: now.Add(-time.Hour), CreatedAt: now.Add(-2 * time.Hour)}
	require.NoError(t, s.Sessions().CreateSession(ctx, live))
	require.NoError(t, s.Sessions().CreateSession(ctx, stale))

	t.Run("purge removes only expired sessions", func(t *testing.T) {
		n, err := s.Sessions().DeleteExpiredSessions(ctx, now)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		_, err = s.Sessions().GetSessionByID(ctx, "ses_stale")
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := s.Sessions().GetSessionByID(ctx, "ses_live")
		require.NoError(t, err)
		require.Equal(t, "usr_1", got.UserID)
	})

	t.Run("delete revokes session", func(t *testing.T) {
		require.NoError(t, s.Sessions().DeleteSession(ctx, "ses_live"))
		_, err := s.Sessions().GetSessionByID(ctx, "ses_live")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestTenantsRepoCounters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	require.NoError(t, s.Tenants().AddCredits(ctx, "tnt_1", -3))
	require.NoError(t, s.Tenants().IncrementMessagesSent(ctx, "tnt_1", 3))

	got, err := s.Tenants().GetTenantByID(ctx, "tnt_1")
	require.NoError(t, err)
	require.EqualValues(t, 97, got.Credits)
	require.EqualValues(t, 3, got.TotalMessagesSent)
}

func TestLeadsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")
	seedTenant(t, s, "tnt_2")

	now := time.Now().UTC()
	mk := func(id, tenantID, status string, createdAt time.Time) domain.Lead {
		return domain.Lead{
			ID: id, TenantID: tenantID, Name: "Lead " + id, Status: status,
			LastContact: createdAt, CreatedAt: createdAt, UpdatedAt: createdAt,
		}
	}
	require.NoError(t, s.Leads().CreateLead(ctx, mk("led_1", "tnt_1", domain.LeadStatusNew, now.Add(-48*time.Hour))))
	require.NoError(t, s.Leads().CreateLead(ctx, mk("led_2", "tnt_1", domain.LeadStatusClosed, now.Add(-24*time.Hour))))
	require.NoError(t, s.Leads().CreateLead(ctx, mk("led_3", "tnt_1", domain.LeadStatusNew, now)))
	require.NoError(t, s.Leads().CreateLead(ctx, mk("led_other", "tnt_2", domain.LeadStatusNew, now)))

	t.Run("list is tenant scoped and newest first", func(t *testing.T) {
		leads, err := s.Leads().ListLeads(ctx, "tnt_1")
		require.NoError(t, err)
		require.Len(t, leads, 3)
		require.Equal(t, "led_3", leads[0].ID)
		require.Equal(t, "led_1", leads[2].ID)
	})

	t.Run("update and fetch", func(t *testing.T) {
		l, err := s.Leads().GetLeadByID(ctx, "tnt_1", "led_1")
		require.NoError(t, err)

		l.Status = domain.LeadStatusInterested
		l.Notes = "asked for a site visit"
		l.UpdatedAt = now
		require.NoError(t, s.Leads().UpdateLead(ctx, l))

		got, err := s.Leads().GetLeadByID(ctx, "tnt_1", "led_1")
		require.NoError(t, err)
		require.Equal(t, domain.LeadStatusInterested, got.Status)
		require.Equal(t, "asked for a site visit", got.Notes)
	})

	t.Run("update across tenants is not found", func(t *testing.T) {
		l, err := s.Leads().GetLeadByID(ctx, "tnt_1", "led_1")
		require.NoError(t, err)
		l.TenantID = "tnt_2"
		require.ErrorIs(t, s.Leads().UpdateLead(ctx, l), store.ErrNotFound)
	})

	t.Run("counts", func(t *testing.T) {
		total, err := s.Leads().CountLeads(ctx, "tnt_1")
		require.NoError(t, err)
		require.EqualValues(t, 3, total)

		recent, err := s.Leads().CountLeadsSince(ctx, "tnt_1", now.Add(-30*time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 2, recent)

		byStatus, err := s.Leads().CountLeadsByStatus(ctx, "tnt_1")
		require.NoError(t, err)
		got := map[string]int64{}
		for _, c := range byStatus {
			got[c.Status] = c.Count
		}
		require.EqualValues(t, 1, got[domain.LeadStatusInterested])
		require.EqualValues(t, 1, got[domain.LeadStatusClosed])
		require.EqualValues(t, 1, got[domain.LeadStatusNew])
	})

	t.Run("daily buckets ordered ascending", func(t *testing.T) {
		buckets, err := s.Leads().DailyLeadCounts(ctx, "tnt_1", now.Add(-72*time.Hour))
		require.NoError(t, err)
		require.NotEmpty(t, buckets)
		for i := 1; i < len(buckets); i++ {
			require.Less(t, buckets[i-1].Bucket, buckets[i].Bucket)
		}
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Leads().DeleteLead(ctx, "tnt_1", "led_2"))
		require.ErrorIs(t, s.Leads().DeleteLead(ctx, "tnt_1", "led_2"), store.ErrNotFound)
	})
}

func TestCampaignsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	now := time.Now().UTC()
	c := domain.Campaign{
		ID: "cmp_1", TenantID: "tnt_1", Name: "Diwali Offers",
		Type: domain.CampaignTypePromotional, Status: domain.CampaignStatusDraft,
		Message: "Festive discounts on 2BHK flats", CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Campaigns().CreateCampaign(ctx, c))

	t.Run("status transition", func(t *testing.T) {
		require.NoError(t, s.Campaigns().UpdateCampaignStatus(ctx, "tnt_1", "cmp_1", domain.CampaignStatusActive))

		got, err := s.Campaigns().GetCampaignByID(ctx, "tnt_1", "cmp_1")
		require.NoError(t, err)
		require.Equal(t, domain.CampaignStatusActive, got.Status)

		n, err := s.Campaigns().CountActiveCampaigns(ctx, "tnt_1")
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Campaigns().DeleteCampaign(ctx, "tnt_1", "cmp_1"))
		_, err := s.Campaigns().GetCampaignByID(ctx, "tnt_1", "cmp_1")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAppointmentsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	now := time.Now().UTC()
	mk := func(id, date, status string) domain.Appointment {
		return domain.Appointment{
			ID: id, TenantID: "tnt_1", LeadName: "Rahul", Date: date, Time: "10:30",
			Type: "site-visit", Status: status, CreatedAt: now, UpdatedAt: now,
		}
	}
	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("apt_1", "2026-09-10", domain.AppointmentStatusScheduled)))
	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("apt_2", "2026-08-01", domain.AppointmentStatusScheduled)))
	require.NoError(t, s.Appointments().CreateAppointment(ctx, mk("apt_3", "2026-09-12", domain.AppointmentStatusCancelled)))

	n, err := s.Appointments().CountUpcomingAppointments(ctx, "tnt_1", "2026-09-01")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	appts, err := s.Appointments().ListAppointments(ctx, "tnt_1")
	require.NoError(t, err)
	require.Len(t, appts, 3)
	require.Equal(t, "apt_2", appts[0].ID)
}

func TestTransactionsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	now := time.Now().UTC()
	require.NoError(t, s.Transactions().CreateTransaction(ctx, domain.Transaction{
		ID: "txn_1", TenantID: "tnt_1", Type: domain.TransactionTypePurchase,
		Amount: 99900, Credits: 500, Description: "Growth pack",
		Status: domain.TransactionStatusPending, Reference: "order_abc", Date: now,
	}))
	require.NoError(t, s.Transactions().CreateTransaction(ctx, domain.Transaction{
		ID: "txn_2", TenantID: "tnt_1", Type: domain.TransactionTypeUsage,
		Credits: -1, Description: "WhatsApp message",
		Status: domain.TransactionStatusCompleted, Date: now,
	}))

	t.Run("lookup by gateway reference", func(t *testing.T) {
		got, err := s.Transactions().GetTransactionByReference(ctx, "tnt_1", "order_abc")
		require.NoError(t, err)
		require.Equal(t, "txn_1", got.ID)
	})

	t.Run("status update", func(t *testing.T) {
		require.NoError(t, s.Transactions().UpdateTransactionStatus(ctx, "tnt_1", "txn_1", domain.TransactionStatusCompleted))
		got, err := s.Transactions().GetTransactionByReference(ctx, "tnt_1", "order_abc")
		require.NoError(t, err)
		require.Equal(t, domain.TransactionStatusCompleted, got.Status)
	})

	t.Run("monthly usage buckets exclude purchases", func(t *testing.T) {
		buckets, err := s.Transactions().MonthlyUsageCounts(ctx, "tnt_1", now.Add(-time.Hour))
		require.NoError(t, err)
		require.Len(t, buckets, 1)
		require.EqualValues(t, 1, buckets[0].Count)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedTenant(t, s, "tnt_1")

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tenants().AddCredits(ctx, "tnt_1", -10); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	got, err := s.Tenants().GetTenantByID(ctx, "tnt_1")
	require.NoError(t, err)
	require.EqualValues(t, 100, got.Credits)
}
