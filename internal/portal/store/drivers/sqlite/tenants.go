package sqlite

import (
	"context"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
)

type tenantsRepo struct {
	q dbtx
}

func (r *tenantsRepo) GetTenantByID(ctx context.Context, id string) (domain.Tenant, error) {
	var t domain.Tenant
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, logo, email, phone, address, industry, credits, total_messages_sent, created_at, updated_at
		 FROM tenants WHERE id = ?`, id).
		Scan(&t.ID, &t.Name, &t.Logo, &t.Email, &t.Phone, &t.Address, &t.Industry,
			&t.Credits, &t.TotalMessagesSent, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Tenant{}, mapNotFound(err)
	}
	return t, nil
}

func (r *tenantsRepo) CreateTenant(ctx context.Context, t domain.Tenant) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO tenants (id, name, logo, email, phone, address, industry, credits, total_messages_sent, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Logo, t.Email, t.Phone, t.Address, t.Industry,
		t.Credits, t.TotalMessagesSent, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *tenantsRepo) AddCredits(ctx context.Context, tenantID string, delta int64) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE tenants SET credits = credits + ?, updated_at = ? WHERE id = ?`,
		delta, time.Now().UTC(), tenantID)
	return err
}

func (r *tenantsRepo) IncrementMessagesSent(ctx context.Context, tenantID string, n int64) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE tenants SET total_messages_sent = total_messages_sent + ?, updated_at = ? WHERE id = ?`,
		n, time.Now().UTC(), tenantID)
	return err
}
