package dto

import "github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"

type UserAnalyticsFilter struct {
	Search string `query:"search" validate:"omitempty,max=200"`
}

type AnalyticsResponse struct {
	Summary            *repository.PlatformSummary `json:"summary"`
	StatusDistribution []repository.StatusCount    `json:"status_distribution"`
	GeneratedAt        string                      `json:"generated_at"`
}
