package dto

import (
	"time"

	"gorm.io/datatypes"
)

type CreateSegmentRequest struct {
	Name             string         `json:"name" validate:"required,min=1,max=255"`
	Description      *string        `json:"description"`
	Demographics     datatypes.JSON `json:"demographics"`
	Interests        datatypes.JSON `json:"interests"`
	BehaviorPatterns datatypes.JSON `json:"behavior_patterns"`
}

type IntentSignalRequest struct {
	InfluencerID           string         `json:"influencer_id" validate:"required,uuid"`
	SignalType             string         `json:"signal_type" validate:"required,oneof=linkedin_engagement newsletter_opens podcast_listens social_engagement"`
	SignalData             datatypes.JSON `json:"signal_data" validate:"required"`
	AudienceDemographics   datatypes.JSON `json:"audience_demographics"`
	EngagementQualityScore *float64       `json:"engagement_quality_score" validate:"omitempty,gte=0,lte=1"`
	IntentScore            *float64       `json:"intent_score" validate:"omitempty,gte=0,lte=1"`
}

type TrustRelationshipRequest struct {
	InfluencerID        string     `json:"influencer_id" validate:"required,uuid"`
	CustomerID          *string    `json:"customer_id" validate:"omitempty,max=255"`
	RelationshipType    string     `json:"relationship_type" validate:"required,oneof=follows engages subscribes interacts"`
	Platform            string     `json:"platform" validate:"required,oneof=linkedin twitter newsletter podcast"`
	ConnectionStrength  *float64   `json:"connection_strength" validate:"omitempty,gte=0,lte=1"`
	EngagementFrequency int        `json:"engagement_frequency" validate:"min=0"`
	LastInteraction     *time.Time `json:"last_interaction"`
	Verified            bool       `json:"verified"`
}

type AudienceOverlapRequest struct {
	InfluencerID      string `json:"influencer_id" validate:"required,uuid"`
	AudienceSegmentID string `json:"audience_segment_id" validate:"required,uuid"`
}

type AudienceOverlapResponse struct {
	InfluencerID      string  `json:"influencer_id"`
	AudienceSegmentID string  `json:"audience_segment_id"`
	OverlapPercentage float64 `json:"overlap_percentage"`
}

type AlignmentFilter struct {
	MinScore *float64 `query:"min_score" validate:"omitempty,gte=0,lte=1"`
}

type TrustGraphNode struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

type TrustGraphEdge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type TrustGraphResponse struct {
	Nodes []TrustGraphNode `json:"nodes"`
	Edges []TrustGraphEdge `json:"edges"`
}
