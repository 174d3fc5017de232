package sqlite

import (
	"context"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
)

type leadsRepo struct {
	q dbtx
}

const leadColumns = `id, tenant_id, name, email, phone, status, score, source, property, budget, notes, assigned_to, last_contact, created_at, updated_at`

func (r *leadsRepo) ListLeads(ctx context.Context, tenantID string) ([]domain.Lead, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE tenant_id = ? ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func (r *leadsRepo) GetLeadByID(ctx context.Context, tenantID, id string) (domain.Lead, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE tenant_id = ? AND id = ?`, tenantID, id)
	return scanLead(row)
}

func (r *leadsRepo) CreateLead(ctx context.Context, l domain.Lead) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO leads (id, tenant_id, name, email, phone, status, score, source, property, budget, notes, assigned_to, last_contact, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.TenantID, l.Name, l.Email, l.Phone, l.Status, l.Score, l.Source,
		l.Property, l.Budget, l.Notes, l.AssignedTo, l.LastContact, l.CreatedAt, l.UpdatedAt)
	return err
}

func (r *leadsRepo) UpdateLead(ctx context.Context, l domain.Lead) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE leads SET name = ?, email = ?, phone = ?, status = ?, score = ?, source = ?,
		 property = ?, budget = ?, notes = ?, assigned_to = ?, last_contact = ?, updated_at = ?
		 WHERE tenant_id = ? AND id = ?`,
		l.Name, l.Email, l.Phone, l.Status, l.Score, l.Source,
		l.Property, l.Budget, l.Notes, l.AssignedTo, l.LastContact, l.UpdatedAt,
		l.TenantID, l.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *leadsRepo) DeleteLead(ctx context.Context, tenantID, id string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM leads WHERE tenant_id = ? AND id = ?`, tenantID, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *leadsRepo) CountLeads(ctx context.Context, tenantID string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM leads WHERE tenant_id = ?`, tenantID)
}

func (r *leadsRepo) CountLeadsByStatus(ctx context.Context, tenantID string) ([]store.StatusCount, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM leads WHERE tenant_id = ? GROUP BY status`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []store.StatusCount
	for rows.Next() {
		var c store.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *leadsRepo) CountLeadsSince(ctx context.Context, tenantID string, since time.Time) (int64, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM leads WHERE tenant_id = ? AND created_at >= ?`, tenantID, since)
}

// Timestamps are stored as ISO-8601 text (all writes use UTC), so substr
// yields stable day and month bucket keys.
func (r *leadsRepo) DailyLeadCounts(ctx context.Context, tenantID string, since time.Time) ([]store.BucketCount, error) {
	return r.bucketCounts(ctx,
		`SELECT substr(created_at, 1, 10) AS day, COUNT(*) FROM leads
		 WHERE tenant_id = ? AND created_at >= ? GROUP BY day ORDER BY day`, tenantID, since)
}

func (r *leadsRepo) MonthlyLeadCounts(ctx context.Context, tenantID string, since time.Time) ([]store.BucketCount, error) {
	return r.bucketCounts(ctx,
		`SELECT substr(created_at, 1, 7) AS month, COUNT(*) FROM leads
		 WHERE tenant_id = ? AND created_at >= ? GROUP BY month ORDER BY month`, tenantID, since)
}

func (r *leadsRepo) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *leadsRepo) bucketCounts(ctx context.Context, query string, args ...any) ([]store.BucketCount, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []store.BucketCount
	for rows.Next() {
		var c store.BucketCount
		if err := rows.Scan(&c.Bucket, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanLead(row rowScanner) (domain.Lead, error) {
	var l domain.Lead
	err := row.Scan(&l.ID, &l.TenantID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.Score,
		&l.Source, &l.Property, &l.Budget, &l.Notes, &l.AssignedTo, &l.LastContact,
		&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.Lead{}, mapNotFound(err)
	}
	return l, nil
}
