package sqlite

import (
	"context"

	"github.com/venturebothq/venturebot/internal/portal/domain"
)

type appointmentsRepo struct {
	q dbtx
}

func (r *appointmentsRepo) ListAppointments(ctx context.Context, tenantID string) ([]domain.Appointment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, tenant_id, lead_id, lead_name, date, time, type, status, property, agent, notes, created_at, updated_at
		 FROM appointments WHERE tenant_id = ? ORDER BY date, time`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.ID, &a.TenantID, &a.LeadID, &a.LeadName, &a.Date, &a.Time,
			&a.Type, &a.Status, &a.Property, &a.Agent, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func (r *appointmentsRepo) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO appointments (id, tenant_id, lead_id, lead_name, date, time, type, status, property, agent, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.TenantID, a.LeadID, a.LeadName, a.Date, a.Time, a.Type, a.Status,
		a.Property, a.Agent, a.Notes, a.CreatedAt, a.UpdatedAt)
	return err
}

// Dates are YYYY-MM-DD text so lexical compare matches chronological order.
func (r *appointmentsRepo) CountUpcomingAppointments(ctx context.Context, tenantID, fromDate string) (int64, error) {
	var n int64
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM appointments WHERE tenant_id = ? AND date >= ? AND status = ?`,
		tenantID, fromDate, domain.AppointmentStatusScheduled).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
