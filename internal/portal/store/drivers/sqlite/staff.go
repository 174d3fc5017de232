package sqlite

import (
	"context"

	"github.com/venturebothq/venturebot/internal/portal/domain"
)

type staffRepo struct {
	q dbtx
}

func (r *staffRepo) ListStaff(ctx context.Context, tenantID string) ([]domain.Staff, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, tenant_id, name, email, role, avatar, status, phone, joined_at
		 FROM staff WHERE tenant_id = ? ORDER BY joined_at`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Staff
	for rows.Next() {
		var m domain.Staff
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Name, &m.Email, &m.Role,
			&m.Avatar, &m.Status, &m.Phone, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *staffRepo) CreateStaff(ctx context.Context, s domain.Staff) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO staff (id, tenant_id, name, email, role, avatar, status, phone, joined_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.TenantID, s.Name, s.Email, s.Role, s.Avatar, s.Status, s.Phone, s.JoinedAt)
	return err
}
