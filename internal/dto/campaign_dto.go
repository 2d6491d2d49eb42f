package dto

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/utm"
)

type CreateCampaignRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=255"`
	Description    *string          `json:"description"`
	StartDate      *time.Time       `json:"start_date"`
	EndDate        *time.Time       `json:"end_date"`
	Budget         *decimal.Decimal `json:"budget"`
	TargetAudience *string          `json:"target_audience"`
	Goals          []string         `json:"goals" validate:"omitempty,dive,max=255"`
	Status         string           `json:"status" validate:"omitempty,oneof=planning active completed cancelled"`
}

type UpdateCampaignRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string          `json:"description"`
	StartDate      *time.Time       `json:"start_date"`
	EndDate        *time.Time       `json:"end_date"`
	Budget         *decimal.Decimal `json:"budget"`
	TargetAudience *string          `json:"target_audience"`
	Goals          []string         `json:"goals" validate:"omitempty,dive,max=255"`
	Status         *string          `json:"status" validate:"omitempty,oneof=planning active completed cancelled"`
}

func (r UpdateCampaignRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.StartDate != nil {
		fields["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		fields["end_date"] = *r.EndDate
	}
	if r.Budget != nil {
		fields["budget"] = *r.Budget
	}
	if r.TargetAudience != nil {
		fields["target_audience"] = *r.TargetAudience
	}
	if r.Goals != nil {
		fields["goals"] = pq.StringArray(r.Goals)
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}

type CampaignFilter struct {
	Status string `query:"status" validate:"omitempty,oneof=planning active completed cancelled"`
}

type AssignInfluencerRequest struct {
	InfluencerID string  `json:"influencer_id" validate:"required,uuid"`
	UTMSource    string  `json:"utm_source" validate:"max=255"`
	UTMMedium    string  `json:"utm_medium" validate:"max=255"`
	UTMCampaign  string  `json:"utm_campaign" validate:"max=255"`
	UTMContent   string  `json:"utm_content" validate:"max=255"`
	UTMTerm      string  `json:"utm_term" validate:"max=255"`
	Status       string  `json:"status" validate:"omitempty,oneof=planned active completed cancelled"`
	Notes        *string `json:"notes"`
}

func (r AssignInfluencerRequest) UTM() utm.Params {
	return utm.Params{
		Source:   r.UTMSource,
		Medium:   r.UTMMedium,
		Campaign: r.UTMCampaign,
		Content:  r.UTMContent,
		Term:     r.UTMTerm,
	}
}

type UpdateAssignmentRequest struct {
	UTMSource   *string `json:"utm_source" validate:"omitempty,max=255"`
	UTMMedium   *string `json:"utm_medium" validate:"omitempty,max=255"`
	UTMCampaign *string `json:"utm_campaign" validate:"omitempty,max=255"`
	UTMContent  *string `json:"utm_content" validate:"omitempty,max=255"`
	UTMTerm     *string `json:"utm_term" validate:"omitempty,max=255"`
	Status      *string `json:"status" validate:"omitempty,oneof=planned active completed cancelled"`
	Notes       *string `json:"notes"`
}

func (r UpdateAssignmentRequest) UTMPatch() utm.Patch {
	return utm.Patch{
		Source:   r.UTMSource,
		Medium:   r.UTMMedium,
		Campaign: r.UTMCampaign,
		Content:  r.UTMContent,
		Term:     r.UTMTerm,
	}
}
