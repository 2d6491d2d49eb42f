package dto

type AIGenerationRequest struct {
	Prompt         string  `json:"prompt" validate:"required,max=4000"`
	InfluencerName string  `json:"influencer_name" validate:"required,max=255"`
	Platform       string  `json:"platform" validate:"required,max=50"`
	Industry       string  `json:"industry" validate:"required,max=100"`
	Context        *string `json:"context" validate:"omitempty,max=4000"`
}

type AIGenerationResponse struct {
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}
