package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// PlatformSummary is the admin dashboard headline.
type PlatformSummary struct {
	TotalUsers              int64   `json:"total_users"`
	TotalInfluencers        int64   `json:"total_influencers"`
	TotalSaved              int64   `json:"total_saved"`
	PartneredInfluencers    int64   `json:"partnered_influencers"`
	TotalCampaigns          int64   `json:"total_campaigns"`
	ActiveCampaigns         int64   `json:"active_campaigns"`
	TotalInteractions       int64   `json:"total_interactions"`
	AvgRelationshipStrength float64 `json:"avg_relationship_strength"`
}

// UserAnalytics is one row of the per-user admin report.
type UserAnalytics struct {
	UserID                  string     `json:"user_id"`
	Email                   string     `json:"email"`
	Name                    string     `json:"name"`
	Role                    string     `json:"role"`
	SubscriptionStatus      string     `json:"subscription_status"`
	TotalInfluencers        int64      `json:"total_influencers"`
	PartneredInfluencers    int64      `json:"partnered_influencers"`
	TotalCampaigns          int64      `json:"total_campaigns"`
	ActiveCampaigns         int64      `json:"active_campaigns"`
	TotalInteractions       int64      `json:"total_interactions"`
	AvgRelationshipStrength float64    `json:"avg_relationship_strength"`
	LastActivity            *time.Time `json:"last_activity"`
	CreatedAt               time.Time  `json:"created_at"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AnalyticsRepository aggregates across all users. Only admin routes reach it.
type AnalyticsRepository interface {
	PlatformSummary(ctx context.Context) (*PlatformSummary, error)
	UserAnalytics(ctx context.Context, q listquery.Query) ([]UserAnalytics, int64, error)
	StatusDistribution(ctx context.Context) ([]StatusCount, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) PlatformSummary(ctx context.Context) (*PlatformSummary, error) {
	db := r.db.WithContext(ctx)
	var s PlatformSummary

	counts := []struct {
		dst   *int64
		model any
		where []any
	}{
		{&s.TotalUsers, &models.User{}, nil},
		{&s.TotalInfluencers, &models.Influencer{}, nil},
		{&s.TotalSaved, &models.SavedInfluencer{}, nil},
		{&s.PartneredInfluencers, &models.SavedInfluencer{}, []any{"status = ?", models.SavedStatusPartnered}},
		{&s.TotalCampaigns, &models.Campaign{}, nil},
		{&s.ActiveCampaigns, &models.Campaign{}, []any{"status = ?", models.CampaignStatusActive}},
		{&s.TotalInteractions, &models.Interaction{}, nil},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&models.SavedInfluencer{}).
		Select("COALESCE(AVG(relationship_strength), 0)").
		Scan(&s.AvgRelationshipStrength).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

const userAnalyticsSelect = `u.id AS user_id, u.email, u.name, u.role, u.subscription_status, u.created_at,
	(SELECT COUNT(*) FROM user_influencers ui WHERE ui.user_id = u.id) AS total_influencers,
	(SELECT COUNT(*) FROM user_influencers ui WHERE ui.user_id = u.id AND ui.status = 'partnered') AS partnered_influencers,
	(SELECT COUNT(*) FROM campaigns c WHERE c.user_id = u.id) AS total_campaigns,
	(SELECT COUNT(*) FROM campaigns c WHERE c.user_id = u.id AND c.status = 'active') AS active_campaigns,
	(SELECT COUNT(*) FROM interactions i WHERE i.user_id = u.id) AS total_interactions,
	(SELECT COALESCE(AVG(ui.relationship_strength), 0) FROM user_influencers ui WHERE ui.user_id = u.id) AS avg_relationship_strength,
	(SELECT MAX(i.interaction_date) FROM interactions i WHERE i.user_id = u.id) AS last_activity`

func (r *analyticsRepository) UserAnalytics(ctx context.Context, q listquery.Query) ([]UserAnalytics, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).Table("users u").Where("u.deleted_at IS NULL").Scopes(q.Scope)
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	out := []UserAnalytics{}
	if q.Beyond(total) {
		return out, total, nil
	}
	err := base.Select(userAnalyticsSelect).Scopes(q.Paginate).Scan(&out).Error
	return out, total, err
}

func (r *analyticsRepository) StatusDistribution(ctx context.Context) ([]StatusCount, error) {
	var out []StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.SavedInfluencer{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}
