package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// InfluencerRepository reads the public influencer directory.
type InfluencerRepository interface {
	List(ctx context.Context, q listquery.Query) ([]models.Influencer, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, influencer *models.Influencer) error
	Count(ctx context.Context) (int64, error)
}

type influencerRepository struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) InfluencerRepository {
	return &influencerRepository{db: db}
}

func (r *influencerRepository) List(ctx context.Context, q listquery.Query) ([]models.Influencer, int64, error) {
	var out []models.Influencer
	total, err := listquery.Find(ctx, r.db, q, &out)
	return out, total, err
}

func (r *influencerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	var inf models.Influencer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inf).Error; err != nil {
		return nil, err
	}
	return &inf, nil
}

func (r *influencerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Influencer{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *influencerRepository) Create(ctx context.Context, influencer *models.Influencer) error {
	return r.db.WithContext(ctx).Create(influencer).Error
}

func (r *influencerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Influencer{}).Count(&n).Error
	return n, err
}
