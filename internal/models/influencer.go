package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Influencer is a publicly discoverable creator profile.
type Influencer struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name                 string         `gorm:"size:255;not null;index" json:"name"`
	Platform             string         `gorm:"size:50;not null;index" json:"platform"`
	Handle               *string        `gorm:"size:255" json:"handle"`
	Bio                  *string        `gorm:"type:text" json:"bio"`
	AvatarURL            *string        `gorm:"type:text" json:"avatar_url"`
	WebsiteURL           *string        `gorm:"type:text" json:"website_url"`
	Email                *string        `gorm:"size:255" json:"email"`
	LinkedInURL          *string        `gorm:"column:linkedin_url;type:text" json:"linkedin_url"`
	TwitterURL           *string        `gorm:"type:text" json:"twitter_url"`
	Industry             *string        `gorm:"size:100;index" json:"industry"`
	AudienceSize         *int           `gorm:"index" json:"audience_size"`
	EngagementRate       *float64       `json:"engagement_rate"`
	Location             *string        `gorm:"size:255" json:"location"`
	ExpertiseTags        pq.StringArray `gorm:"type:text[];default:'{}'" json:"expertise_tags"`
	AudienceDemographics datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"audience_demographics"`
	ContactInfo          datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"contact_info"`
	IsVerified           bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

const (
	SavedStatusSaved     = "saved"
	SavedStatusContacted = "contacted"
	SavedStatusWarm      = "warm"
	SavedStatusCold      = "cold"
	SavedStatusPartnered = "partnered"
)

// SavedInfluencer is a user's CRM relationship with an influencer.
type SavedInfluencer struct {
	ID                   uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID               string         `gorm:"type:uuid;not null;uniqueIndex:idx_user_influencer" json:"user_id"`
	InfluencerID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_influencer" json:"influencer_id"`
	Status               string         `gorm:"size:20;not null;default:'saved';index" json:"status"`
	Notes                *string        `gorm:"type:text" json:"notes"`
	Priority             int            `gorm:"default:0" json:"priority"`
	Tags                 pq.StringArray `gorm:"type:text[];default:'{}'" json:"tags"`
	LastContactedAt      *time.Time     `json:"last_contacted_at"`
	FollowUpDate         *time.Time     `json:"follow_up_date"`
	RelationshipStrength int            `gorm:"default:0" json:"relationship_strength"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`

	Influencer *Influencer `gorm:"foreignKey:InfluencerID" json:"influencer,omitempty"`
}

func (SavedInfluencer) TableName() string {
	return "user_influencers"
}
