package dto

import (
	"time"

	"github.com/lib/pq"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

type InfluencerFilter struct {
	Platform     string `query:"platform" validate:"omitempty,max=50"`
	Industry     string `query:"industry" validate:"omitempty,max=100"`
	Search       string `query:"search" validate:"omitempty,max=200"`
	MinFollowers *int   `query:"min_followers" validate:"omitempty,min=0"`
}

type CreateInfluencerRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Platform       string   `json:"platform" validate:"required,max=50"`
	Handle         *string  `json:"handle" validate:"omitempty,max=255"`
	Bio            *string  `json:"bio"`
	AvatarURL      *string  `json:"avatar_url" validate:"omitempty,url"`
	WebsiteURL     *string  `json:"website_url" validate:"omitempty,url"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	LinkedInURL    *string  `json:"linkedin_url" validate:"omitempty,url"`
	TwitterURL     *string  `json:"twitter_url" validate:"omitempty,url"`
	Industry       *string  `json:"industry" validate:"omitempty,max=100"`
	AudienceSize   *int     `json:"audience_size" validate:"omitempty,min=0"`
	EngagementRate *float64 `json:"engagement_rate" validate:"omitempty,gte=0,lte=100"`
	Location       *string  `json:"location" validate:"omitempty,max=255"`
	ExpertiseTags  []string `json:"expertise_tags" validate:"omitempty,max=20,dive,max=100"`
	IsVerified     bool     `json:"is_verified"`
}

// CreateInfluencerResponse carries the stored influencer and, when the bio
// was analyzed, the score that was recorded for it.
type CreateInfluencerResponse struct {
	Influencer *models.Influencer          `json:"influencer"`
	Alignment  *models.BuyerAlignmentScore `json:"alignment_score,omitempty"`
}

type SaveInfluencerRequest struct {
	InfluencerID string   `json:"influencer_id" validate:"required,uuid"`
	Status       string   `json:"status" validate:"omitempty,oneof=saved contacted warm cold partnered"`
	Notes        *string  `json:"notes"`
	Priority     int      `json:"priority" validate:"min=0,max=10"`
	Tags         []string `json:"tags" validate:"omitempty,dive,max=100"`
}

// UpdateSavedInfluencerRequest is a partial update. Nil fields are left as
// stored.
type UpdateSavedInfluencerRequest struct {
	Status               *string    `json:"status" validate:"omitempty,oneof=saved contacted warm cold partnered"`
	Notes                *string    `json:"notes"`
	Priority             *int       `json:"priority" validate:"omitempty,min=0,max=10"`
	Tags                 []string   `json:"tags" validate:"omitempty,dive,max=100"`
	LastContactedAt      *time.Time `json:"last_contacted_at"`
	FollowUpDate         *time.Time `json:"follow_up_date"`
	RelationshipStrength *int       `json:"relationship_strength" validate:"omitempty,min=0,max=100"`
}

// Fields returns the columns the request sets.
func (r UpdateSavedInfluencerRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	if r.Priority != nil {
		fields["priority"] = *r.Priority
	}
	if r.Tags != nil {
		fields["tags"] = pq.StringArray(r.Tags)
	}
	if r.LastContactedAt != nil {
		fields["last_contacted_at"] = *r.LastContactedAt
	}
	if r.FollowUpDate != nil {
		fields["follow_up_date"] = *r.FollowUpDate
	}
	if r.RelationshipStrength != nil {
		fields["relationship_strength"] = *r.RelationshipStrength
	}
	return fields
}

type SavedFilter struct {
	Status string `query:"status" validate:"omitempty,oneof=saved contacted warm cold partnered"`
}

type RelationshipQuery struct {
	Strength *int `query:"strength" validate:"required,min=0,max=100"`
}

type FollowUpQuery struct {
	FollowUpDate string `query:"follow_up_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type CheckSavedResponse struct {
	IsSaved bool                    `json:"is_saved"`
	Saved   *models.SavedInfluencer `json:"saved,omitempty"`
}
