package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/idx"
)

var ErrInvalidDate = errors.New("invalid_date")

type AppointmentService struct {
	Store store.Store
}

type NewAppointment struct {
	LeadID   string
	LeadName string
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Type     string
	Property string
	Agent    string
	Notes    string
}

func (s *AppointmentService) ListAppointments(ctx context.Context, tenantID string) ([]domain.Appointment, error) {
	return s.Store.Appointments().ListAppointments(ctx, tenantID)
}

func (s *AppointmentService) CreateAppointment(ctx context.Context, tenantID string, in NewAppointment) (domain.Appointment, error) {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return domain.Appointment{}, ErrInvalidDate
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return domain.Appointment{}, ErrInvalidDate
	}

	now := time.Now().UTC()
	a := domain.Appointment{
		ID:        idx.New().String(),
		TenantID:  tenantID,
		LeadID:    in.LeadID,
		LeadName:  in.LeadName,
		Date:      in.Date,
		Time:      in.Time,
		Type:      in.Type,
		Status:    domain.AppointmentStatusScheduled,
		Property:  in.Property,
		Agent:     in.Agent,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Appointments().CreateAppointment(ctx, a); err != nil {
		return domain.Appointment{}, err
	}
	return a, nil
}
