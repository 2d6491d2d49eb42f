package dto

import "time"

type CreateInteractionRequest struct {
	InfluencerID    string     `json:"influencer_id" validate:"required,uuid"`
	CampaignID      *string    `json:"campaign_id" validate:"omitempty,uuid"`
	Type            string     `json:"type" validate:"required,oneof=email call meeting note file_upload"`
	Subject         *string    `json:"subject" validate:"omitempty,max=500"`
	Content         *string    `json:"content"`
	FileURL         *string    `json:"file_url" validate:"omitempty,url"`
	InteractionDate *time.Time `json:"interaction_date"`
}

type UpdateInteractionRequest struct {
	Type            *string    `json:"type" validate:"omitempty,oneof=email call meeting note file_upload"`
	Subject         *string    `json:"subject" validate:"omitempty,max=500"`
	Content         *string    `json:"content"`
	FileURL         *string    `json:"file_url" validate:"omitempty,url"`
	InteractionDate *time.Time `json:"interaction_date"`
}

func (r UpdateInteractionRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Type != nil {
		fields["type"] = *r.Type
	}
	if r.Subject != nil {
		fields["subject"] = *r.Subject
	}
	if r.Content != nil {
		fields["content"] = *r.Content
	}
	if r.FileURL != nil {
		fields["file_url"] = *r.FileURL
	}
	if r.InteractionDate != nil {
		fields["interaction_date"] = *r.InteractionDate
	}
	return fields
}

type InteractionFilter struct {
	InfluencerID string `query:"influencer_id" validate:"omitempty,uuid"`
	CampaignID   string `query:"campaign_id" validate:"omitempty,uuid"`
	Type         string `query:"type" validate:"omitempty,oneof=email call meeting note file_upload"`
}
