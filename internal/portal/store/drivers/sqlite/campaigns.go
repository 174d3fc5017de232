package sqlite

import (
	"context"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
)

type campaignsRepo struct {
	q dbtx
}

const campaignColumns = `id, tenant_id, name, type, template_name, target_audience, message, status, messages_sent, opens, replies, created_at, updated_at`

func (r *campaignsRepo) ListCampaigns(ctx context.Context, tenantID string) ([]domain.Campaign, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE tenant_id = ? ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *campaignsRepo) GetCampaignByID(ctx context.Context, tenantID, id string) (domain.Campaign, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE tenant_id = ? AND id = ?`, tenantID, id)
	return scanCampaign(row)
}

func (r *campaignsRepo) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO campaigns (id, tenant_id, name, type, template_name, target_audience, message, status, messages_sent, opens, replies, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.TenantID, c.Name, c.Type, c.TemplateName, c.TargetAudience, c.Message,
		c.Status, c.MessagesSent, c.Opens, c.Replies, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *campaignsRepo) UpdateCampaignStatus(ctx context.Context, tenantID, id, status string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE campaigns SET status = ?, updated_at = ? WHERE tenant_id = ? AND id = ?`,
		status, time.Now().UTC(), tenantID, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *campaignsRepo) DeleteCampaign(ctx context.Context, tenantID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM campaigns WHERE tenant_id = ? AND id = ?`, tenantID, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *campaignsRepo) CountActiveCampaigns(ctx context.Context, tenantID string) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM campaigns WHERE tenant_id = ? AND status = ?`,
		tenantID, domain.CampaignStatusActive).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func scanCampaign(row rowScanner) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Type, &c.TemplateName, &c.TargetAudience,
		&c.Message, &c.Status, &c.MessagesSent, &c.Opens, &c.Replies, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Campaign{}, mapNotFound(err)
	}
	return c, nil
}
