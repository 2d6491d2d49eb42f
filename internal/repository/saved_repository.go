package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// SavedInfluencerRepository stores a user's CRM list.
type SavedInfluencerRepository interface {
	List(ctx context.Context, q listquery.Query) ([]models.SavedInfluencer, int64, error)
	Find(ctx context.Context, userID string, influencerID uuid.UUID) (*models.SavedInfluencer, error)
	Create(ctx context.Context, saved *models.SavedInfluencer) error
	Update(ctx context.Context, userID string, influencerID uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, userID string, influencerID uuid.UUID) (int64, error)
}

type savedInfluencerRepository struct {
	db *gorm.DB
}

func NewSavedInfluencerRepository(db *gorm.DB) SavedInfluencerRepository {
	return &savedInfluencerRepository{db: db}
}

func withInfluencer(db *gorm.DB) *gorm.DB {
	return db.Preload("Influencer")
}

func (r *savedInfluencerRepository) List(ctx context.Context, q listquery.Query) ([]models.SavedInfluencer, int64, error) {
	var out []models.SavedInfluencer
	total, err := listquery.Find(ctx, r.db, q, &out, withInfluencer)
	return out, total, err
}

func (r *savedInfluencerRepository) Find(ctx context.Context, userID string, influencerID uuid.UUID) (*models.SavedInfluencer, error) {
	var saved models.SavedInfluencer
	err := r.db.WithContext(ctx).
		Preload("Influencer").
		Where("user_id = ? AND influencer_id = ?", userID, influencerID).
		First(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedInfluencerRepository) Create(ctx context.Context, saved *models.SavedInfluencer) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *savedInfluencerRepository) Update(ctx context.Context, userID string, influencerID uuid.UUID, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.SavedInfluencer{}).
		Where("user_id = ? AND influencer_id = ?", userID, influencerID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *savedInfluencerRepository) Delete(ctx context.Context, userID string, influencerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND influencer_id = ?", userID, influencerID).
		Delete(&models.SavedInfluencer{})
	return res.RowsAffected, res.Error
}
