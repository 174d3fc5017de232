package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) SendText(_ context.Context, phone, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, phone)
	return nil
}

func seedTenantWithCredits(t *testing.T, st store.Store, id string, credits int64) {
	t.Helper()

	now := time.Now().UTC()
	require.NoError(t, st.Tenants().CreateTenant(context.Background(), domain.Tenant{
		ID: id, Name: "Prime Properties", Email: "ops@prime.example",
		Credits: credits, CreatedAt: now, UpdatedAt: now,
	}))
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("successful send deducts one credit and records usage", func(t *testing.T) {
		st := newTestStore(t)
		seedTenantWithCredits(t, st, "tnt_1", 5)
		sender := &fakeSender{}
		svc := &MessagingService{Store: st, Sender: sender}

		require.NoError(t, svc.SendMessage(ctx, "tnt_1", "+919876500001", "Hi Amy"))
		require.Equal(t, []string{"+919876500001"}, sender.sent)

		tenant, err := st.Tenants().GetTenantByID(ctx, "tnt_1")
		require.NoError(t, err)
		require.EqualValues(t, 4, tenant.Credits)
		require.EqualValues(t, 1, tenant.TotalMessagesSent)

		txns, err := st.Transactions().ListTransactions(ctx, "tnt_1")
		require.NoError(t, err)
		require.Len(t, txns, 1)
		require.Equal(t, domain.TransactionTypeUsage, txns[0].Type)
		require.EqualValues(t, -1, txns[0].Credits)
	})

	t.Run("zero credits blocks before the provider is called", func(t *testing.T) {
		st := newTestStore(t)
		seedTenantWithCredits(t, st, "tnt_1", 0)
		sender := &fakeSender{}
		svc := &MessagingService{Store: st, Sender: sender}

		require.ErrorIs(t, svc.SendMessage(ctx, "tnt_1", "+919876500001", "Hi"), ErrInsufficientCredits)
		require.Empty(t, sender.sent)
	})

	t.Run("provider failure costs nothing", func(t *testing.T) {
		st := newTestStore(t)
		seedTenantWithCredits(t, st, "tnt_1", 5)
		sender := &fakeSender{err: errors.New("provider down")}
		svc := &MessagingService{Store: st, Sender: sender}

		require.Error(t, svc.SendMessage(ctx, "tnt_1", "+919876500001", "Hi"))

		tenant, err := st.Tenants().GetTenantByID(ctx, "tnt_1")
		require.NoError(t, err)
		require.EqualValues(t, 5, tenant.Credits)
		require.EqualValues(t, 0, tenant.TotalMessagesSent)
	})

	t.Run("validates input", func(t *testing.T) {
		st := newTestStore(t)
		svc := &MessagingService{Store: st, Sender: &fakeSender{}}

		require.ErrorIs(t, svc.SendMessage(ctx, "tnt_1", "", "Hi"), ErrPhoneRequired)
		require.ErrorIs(t, svc.SendMessage(ctx, "tnt_1", "+919876500001", ""), ErrMessageRequired)
	})
}
