package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// AssignmentRepository stores campaign-influencer assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.CampaignInfluencer) error
	List(ctx context.Context, q listquery.Query) ([]models.CampaignInfluencer, int64, error)
	FindOwned(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (*models.CampaignInfluencer, error)
	Exists(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (bool, error)
	Update(ctx context.Context, assignment *models.CampaignInfluencer, fields map[string]any) error
	Delete(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (int64, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.CampaignInfluencer) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) List(ctx context.Context, q listquery.Query) ([]models.CampaignInfluencer, int64, error) {
	var out []models.CampaignInfluencer
	total, err := listquery.Find(ctx, r.db, q, &out, withInfluencer)
	return out, total, err
}

func (r *assignmentRepository) FindOwned(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (*models.CampaignInfluencer, error) {
	var a models.CampaignInfluencer
	err := r.db.WithContext(ctx).
		Preload("Influencer").
		Where("user_id = ? AND campaign_id = ? AND influencer_id = ?", userID, campaignID, influencerID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) Exists(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.CampaignInfluencer{}).
		Where("user_id = ? AND campaign_id = ? AND influencer_id = ?", userID, campaignID, influencerID).
		Count(&n).Error
	return n > 0, err
}

// Update writes fields by column name. Nil values are written as NULL.
func (r *assignmentRepository) Update(ctx context.Context, assignment *models.CampaignInfluencer, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.CampaignInfluencer{}).
		Where("id = ? AND user_id = ?", assignment.ID, assignment.UserID).
		Updates(fields).Error
}

func (r *assignmentRepository) Delete(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND campaign_id = ? AND influencer_id = ?", userID, campaignID, influencerID).
		Delete(&models.CampaignInfluencer{})
	return res.RowsAffected, res.Error
}
