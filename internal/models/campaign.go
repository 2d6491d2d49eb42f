package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/utm"
)

const (
	CampaignStatusPlanning  = "planning"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

type Campaign struct {
	ID             uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Name           string           `gorm:"size:255;not null" json:"name"`
	Description    *string          `gorm:"type:text" json:"description"`
	StartDate      *time.Time       `json:"start_date"`
	EndDate        *time.Time       `json:"end_date"`
	Budget         *decimal.Decimal `gorm:"type:numeric(14,2)" json:"budget"`
	TargetAudience *string          `gorm:"type:text" json:"target_audience"`
	Goals          pq.StringArray   `gorm:"type:text[];default:'{}'" json:"goals"`
	Status         string           `gorm:"size:20;not null;default:'planning';index" json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

const (
	AssignmentStatusPlanned   = "planned"
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

// CampaignInfluencer assigns an influencer to a campaign, with tracking link.
type CampaignInfluencer struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CampaignID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_influencer" json:"campaign_id"`
	InfluencerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_campaign_influencer" json:"influencer_id"`
	UTMSource    *string   `gorm:"size:255" json:"utm_source"`
	UTMMedium    *string   `gorm:"size:255" json:"utm_medium"`
	UTMCampaign  *string   `gorm:"size:255" json:"utm_campaign"`
	UTMContent   *string   `gorm:"size:255" json:"utm_content"`
	UTMTerm      *string   `gorm:"size:255" json:"utm_term"`
	UTMURL       *string   `gorm:"type:text" json:"utm_url"`
	Status       string    `gorm:"size:20;not null;default:'planned'" json:"status"`
	Notes        *string   `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Influencer *Influencer `gorm:"foreignKey:InfluencerID" json:"influencer,omitempty"`
}

// UTM returns the stored tracking fields.
func (a *CampaignInfluencer) UTM() utm.Params {
	return utm.Params{
		Source:   deref(a.UTMSource),
		Medium:   deref(a.UTMMedium),
		Campaign: deref(a.UTMCampaign),
		Content:  deref(a.UTMContent),
		Term:     deref(a.UTMTerm),
	}
}

// SetUTM stores tracking fields and the derived link. Empty values are stored
// as NULL.
func (a *CampaignInfluencer) SetUTM(p utm.Params, link *string) {
	a.UTMSource = nullable(p.Source)
	a.UTMMedium = nullable(p.Medium)
	a.UTMCampaign = nullable(p.Campaign)
	a.UTMContent = nullable(p.Content)
	a.UTMTerm = nullable(p.Term)
	a.UTMURL = link
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
