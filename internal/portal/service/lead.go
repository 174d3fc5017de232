package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/cache"
	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/idx"
)

var (
	ErrInvalidLeadStatus = errors.New("invalid_lead_status")
	ErrNameRequired      = errors.New("name_required")
)

type LeadService struct {
	Store store.Store
	Cache *cache.Cache
}

// NewLead carries the caller-supplied fields for creating or updating a lead.
type NewLead struct {
	Name       string
	Email      string
	Phone      string
	Status     string
	Score      int
	Source     string
	Property   string
	Budget     string
	Notes      string
	AssignedTo string
}

func (s *LeadService) ListLeads(ctx context.Context, tenantID string) ([]domain.Lead, error) {
	return s.Store.Leads().ListLeads(ctx, tenantID)
}

func (s *LeadService) CreateLead(ctx context.Context, tenantID string, in NewLead) (domain.Lead, error) {
	if in.Name == "" {
		return domain.Lead{}, ErrNameRequired
	}
	if in.Status == "" {
		in.Status = domain.LeadStatusNew
	}
	if !domain.ValidLeadStatus(in.Status) {
		return domain.Lead{}, ErrInvalidLeadStatus
	}

	now := time.Now().UTC()
	lead := domain.Lead{
		ID:          idx.New().String(),
		TenantID:    tenantID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Status:      in.Status,
		Score:       in.Score,
		Source:      in.Source,
		Property:    in.Property,
		Budget:      in.Budget,
		Notes:       in.Notes,
		AssignedTo:  in.AssignedTo,
		LastContact: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Leads().CreateLead(ctx, lead); err != nil {
		return domain.Lead{}, err
	}

	s.invalidateDashboard(ctx, tenantID)
	return lead, nil
}

func (s *LeadService) UpdateLead(ctx context.Context, tenantID, id string, in NewLead) (domain.Lead, error) {
	if in.Name == "" {
		return domain.Lead{}, ErrNameRequired
	}
	if !domain.ValidLeadStatus(in.Status) {
		return domain.Lead{}, ErrInvalidLeadStatus
	}

	lead, err := s.Store.Leads().GetLeadByID(ctx, tenantID, id)
	if err != nil {
		return domain.Lead{}, err
	}

	lead.Name = in.Name
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.Status = in.Status
	lead.Score = in.Score
	lead.Source = in.Source
	lead.Property = in.Property
	lead.Budget = in.Budget
	lead.Notes = in.Notes
	lead.AssignedTo = in.AssignedTo
	lead.UpdatedAt = time.Now().UTC()

	if err := s.Store.Leads().UpdateLead(ctx, lead); err != nil {
		return domain.Lead{}, err
	}

	s.invalidateDashboard(ctx, tenantID)
	return lead, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, tenantID, id string) error {
	if err := s.Store.Leads().DeleteLead(ctx, tenantID, id); err != nil {
		return err
	}
	s.invalidateDashboard(ctx, tenantID)
	return nil
}

func (s *LeadService) invalidateDashboard(ctx context.Context, tenantID string) {
	s.Cache.Invalidate(ctx, dashboardStatsKey(tenantID), dashboardChartsKey(tenantID))
}
