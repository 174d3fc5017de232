package domain

import "time"

// Campaign is a named outbound-messaging effort with its own lifecycle.
// TemplateName references a pre-approved message template at the messaging
// platform; bulk sends require an approved template.
type Campaign struct {
	ID             string
	TenantID       string
	Name           string
	Type           string // promotional, follow-up, newsletter, announcement
	TemplateName   string
	TargetAudience string
	Message        string
	Status         string // draft, pending, active, paused, completed
	MessagesSent   int64
	Opens          int64
	Replies        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const (
	CampaignTypePromotional  = "promotional"
	CampaignTypeFollowUp     = "follow-up"
	CampaignTypeNewsletter   = "newsletter"
	CampaignTypeAnnouncement = "announcement"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusPending   = "pending"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

func ValidCampaignType(s string) bool {
	switch s {
	case CampaignTypePromotional, CampaignTypeFollowUp, CampaignTypeNewsletter, CampaignTypeAnnouncement:
		return true
	}
	return false
}

func ValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPending, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}
