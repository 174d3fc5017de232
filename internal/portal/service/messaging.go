package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/cache"
	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/internal/portal/whatsapp"
	"github.com/venturebothq/venturebot/pkg/idx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

var (
	ErrInsufficientCredits = errors.New("insufficient_credits")
	ErrPhoneRequired       = errors.New("phone_required")
	ErrMessageRequired     = errors.New("message_required")
)

type MessagingService struct {
	Store  store.Store
	Sender whatsapp.Sender
	Cache  *cache.Cache
}

// SendMessage sends one WhatsApp text message on behalf of the tenant. The
// credit check happens before the provider call; the deduction, the lifetime
// counter bump and the usage transaction commit atomically after a successful
// send. A failed send costs nothing.
func (s *MessagingService) SendMessage(ctx context.Context, tenantID, phone, message string) error {
	if phone == "" {
		return ErrPhoneRequired
	}
	if message == "" {
		return ErrMessageRequired
	}

	tenant, err := s.Store.Tenants().GetTenantByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant.Credits <= 0 {
		return ErrInsufficientCredits
	}

	if err := s.Sender.SendText(ctx, phone, message); err != nil {
		slogx.FromContext(ctx).Warn("whatsapp send failed",
			"tenant_id", tenantID, "phone", phone, "err", err)
		return err
	}

	now := time.Now().UTC()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tenants().AddCredits(ctx, tenantID, -1); err != nil {
			return err
		}
		if err := tx.Tenants().IncrementMessagesSent(ctx, tenantID, 1); err != nil {
			return err
		}
		return tx.Transactions().CreateTransaction(ctx, domain.Transaction{
			ID:          idx.New().String(),
			TenantID:    tenantID,
			Type:        domain.TransactionTypeUsage,
			Credits:     -1,
			Description: "WhatsApp message to " + phone,
			Status:      domain.TransactionStatusCompleted,
			Date:        now,
		})
	})
	if err != nil {
		return err
	}

	s.Cache.Invalidate(ctx, dashboardStatsKey(tenantID), dashboardChartsKey(tenantID))
	return nil
}
