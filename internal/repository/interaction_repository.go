package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// InteractionRepository stores logged touchpoints.
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	List(ctx context.Context, q listquery.Query) ([]models.Interaction, int64, error)
	FindOwned(ctx context.Context, userID string, id uuid.UUID) (*models.Interaction, error)
	Update(ctx context.Context, interaction *models.Interaction, fields map[string]any) error
	Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepository) List(ctx context.Context, q listquery.Query) ([]models.Interaction, int64, error) {
	var out []models.Interaction
	total, err := listquery.Find(ctx, r.db, q, &out)
	return out, total, err
}

func (r *interactionRepository) FindOwned(ctx context.Context, userID string, id uuid.UUID) (*models.Interaction, error) {
	var i models.Interaction
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *interactionRepository) Update(ctx context.Context, interaction *models.Interaction, fields map[string]any) error {
	return r.db.WithContext(ctx).
		Model(interaction).
		Where("user_id = ?", interaction.UserID).
		Updates(fields).Error
}

func (r *interactionRepository) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.Interaction{})
	return res.RowsAffected, res.Error
}
