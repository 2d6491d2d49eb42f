package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

const analyticsCacheKey = "admin:analytics"

var userAnalyticsSort = listquery.NewSortSpec(
	listquery.Sort{Field: "total_influencers", Desc: true},
	"total_influencers", "partnered_influencers", "total_campaigns", "active_campaigns",
	"total_interactions", "avg_relationship_strength", "last_activity",
)

// AdminService reports platform-wide analytics.
type AdminService struct {
	analytics repository.AnalyticsRepository
	cache     *cache.Client
	ttl       time.Duration
}

// NewAdminService builds the service. A nil cache disables caching.
func NewAdminService(analytics repository.AnalyticsRepository, c *cache.Client, ttl time.Duration) *AdminService {
	return &AdminService{analytics: analytics, cache: c, ttl: ttl}
}

// Analytics returns the platform summary, served from Redis while fresh.
func (s *AdminService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	var cached dto.AnalyticsResponse
	if s.cache.GetJSON(ctx, analyticsCacheKey, &cached) {
		return &cached, nil
	}

	summary, err := s.analytics.PlatformSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load platform summary: %w", err)
	}
	dist, err := s.StatusDistribution(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.AnalyticsResponse{
		Summary:            summary,
		StatusDistribution: dist,
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if s.ttl > 0 {
		s.cache.SetJSON(ctx, analyticsCacheKey, resp, s.ttl)
	}
	return resp, nil
}

func (s *AdminService) UserAnalytics(ctx context.Context, p listquery.Params, f dto.UserAnalyticsFilter) ([]repository.UserAnalytics, listquery.Page, error) {
	q := listquery.New(p, userAnalyticsSort).WithSearch(listquery.Search{
		Term:    f.Search,
		Columns: []string{"u.email", "u.name"},
	})
	rows, total, err := s.analytics.UserAnalytics(ctx, q)
	if err != nil {
		return nil, listquery.Page{}, fmt.Errorf("failed to load user analytics: %w", err)
	}
	return rows, listquery.NewPage(q.Page, q.Limit, total), nil
}

func (s *AdminService) StatusDistribution(ctx context.Context) ([]repository.StatusCount, error) {
	dist, err := s.analytics.StatusDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load status distribution: %w", err)
	}
	if dist == nil {
		dist = []repository.StatusCount{}
	}
	return dist, nil
}
