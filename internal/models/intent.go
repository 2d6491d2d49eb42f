package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AudienceSegment is a user-defined buyer audience.
type AudienceSegment struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID           string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	Description      *string        `gorm:"type:text" json:"description"`
	Demographics     datatypes.JSON `gorm:"type:jsonb" json:"demographics"`
	Interests        datatypes.JSON `gorm:"type:jsonb" json:"interests"`
	BehaviorPatterns datatypes.JSON `gorm:"type:jsonb" json:"behavior_patterns"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type IntentSignal struct {
	ID                     uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID                 string         `gorm:"type:uuid;index" json:"-"`
	InfluencerID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"influencer_id"`
	SignalType             string         `gorm:"size:50;not null" json:"signal_type"`
	SignalData             datatypes.JSON `gorm:"type:jsonb;not null" json:"signal_data"`
	AudienceDemographics   datatypes.JSON `gorm:"type:jsonb" json:"audience_demographics"`
	EngagementQualityScore *float64       `json:"engagement_quality_score"`
	IntentScore            *float64       `json:"intent_score"`
	CollectedAt            time.Time      `json:"collected_at"`
	CreatedAt              time.Time      `json:"created_at"`
}

type TrustRelationship struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID              string     `gorm:"type:uuid;index" json:"-"`
	InfluencerID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"influencer_id"`
	CustomerID          *string    `gorm:"size:255" json:"customer_id"`
	RelationshipType    string     `gorm:"size:20;not null" json:"relationship_type"`
	Platform            string     `gorm:"size:20;not null" json:"platform"`
	ConnectionStrength  *float64   `json:"connection_strength"`
	EngagementFrequency int        `gorm:"default:0" json:"engagement_frequency"`
	LastInteraction     *time.Time `json:"last_interaction"`
	Verified            bool       `gorm:"default:false" json:"verified"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// BuyerAlignmentScore rates how well an influencer's audience matches buyers.
type BuyerAlignmentScore struct {
	ID                        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InfluencerID              uuid.UUID  `gorm:"type:uuid;not null;index" json:"influencer_id"`
	AudienceSegmentID         *uuid.UUID `gorm:"type:uuid" json:"audience_segment_id"`
	AlignmentScore            float64    `gorm:"not null;index" json:"alignment_score"`
	AudienceOverlapPercentage *float64   `json:"audience_overlap_percentage"`
	TrustScore                *float64   `json:"trust_score"`
	EngagementQuality         *float64   `json:"engagement_quality"`
	ConversionProbability     *float64   `json:"conversion_probability"`
	CalculatedAt              time.Time  `json:"calculated_at"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`

	Influencer *Influencer `gorm:"foreignKey:InfluencerID" json:"influencer,omitempty"`
}
