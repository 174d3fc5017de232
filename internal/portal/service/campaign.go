package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturebothq/venturebot/internal/portal/domain"
	"github.com/venturebothq/venturebot/internal/portal/store"
	"github.com/venturebothq/venturebot/pkg/idx"
	"github.com/venturebothq/venturebot/pkg/slogx"
)

var (
	ErrInvalidCampaignType = errors.New("invalid_campaign_type")
	ErrTemplateNotDraft    = errors.New("template_not_draft")
)

type CampaignService struct {
	Store store.Store
}

type NewCampaign struct {
	Name           string
	Type           string
	TemplateName   string
	TargetAudience string
	Message        string
}

func (s *CampaignService) ListCampaigns(ctx context.Context, tenantID string) ([]domain.Campaign, error) {
	return s.Store.Campaigns().ListCampaigns(ctx, tenantID)
}

func (s *CampaignService) CreateCampaign(ctx context.Context, tenantID string, in NewCampaign) (domain.Campaign, error) {
	if in.Name == "" {
		return domain.Campaign{}, ErrNameRequired
	}
	if !domain.ValidCampaignType(in.Type) {
		return domain.Campaign{}, ErrInvalidCampaignType
	}

	now := time.Now().UTC()
	c := domain.Campaign{
		ID:             idx.New().String(),
		TenantID:       tenantID,
		Name:           in.Name,
		Type:           in.Type,
		TemplateName:   in.TemplateName,
		TargetAudience: in.TargetAudience,
		Message:        in.Message,
		Status:         domain.CampaignStatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Store.Campaigns().CreateCampaign(ctx, c); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, tenantID, id string) error {
	return s.Store.Campaigns().DeleteCampaign(ctx, tenantID, id)
}

// SubmitTemplate moves a draft campaign to pending, representing the message
// template going into provider review. Only drafts can be submitted.
func (s *CampaignService) SubmitTemplate(ctx context.Context, tenantID, id string) (domain.Campaign, error) {
	c, err := s.Store.Campaigns().GetCampaignByID(ctx, tenantID, id)
	if err != nil {
		return domain.Campaign{}, err
	}
	if c.Status != domain.CampaignStatusDraft {
		return domain.Campaign{}, ErrTemplateNotDraft
	}

	if err := s.Store.Campaigns().UpdateCampaignStatus(ctx, tenantID, id, domain.CampaignStatusPending); err != nil {
		return domain.Campaign{}, err
	}
	c.Status = domain.CampaignStatusPending
	c.UpdatedAt = time.Now().UTC()

	slogx.FromContext(ctx).Info("campaign template submitted for review",
		"tenant_id", tenantID, "campaign_id", id)
	return c, nil
}
