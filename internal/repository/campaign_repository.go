package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// CampaignRepository stores campaigns. Lookups by id always include the
// owner, so a foreign campaign reads as missing.
type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	List(ctx context.Context, q listquery.Query) ([]models.Campaign, int64, error)
	FindOwned(ctx context.Context, userID string, id uuid.UUID) (*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign, fields map[string]any) error
	Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error)
}

type campaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) List(ctx context.Context, q listquery.Query) ([]models.Campaign, int64, error) {
	var out []models.Campaign
	total, err := listquery.Find(ctx, r.db, q, &out)
	return out, total, err
}

func (r *campaignRepository) FindOwned(ctx context.Context, userID string, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *models.Campaign, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(campaign).
		Where("user_id = ?", campaign.UserID).
		Updates(fields).Error
}

// Delete removes the campaign and its assignments in one transaction.
func (r *campaignRepository) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Campaign{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return tx.Where("user_id = ? AND campaign_id = ?", userID, id).
			Delete(&models.CampaignInfluencer{}).Error
	})
	return affected, err
}
