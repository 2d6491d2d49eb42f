package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// IntentRepository stores audience segments, intent signals, trust
// relationships and buyer alignment scores.
type IntentRepository interface {
	CreateSegment(ctx context.Context, segment *models.AudienceSegment) error
	ListSegments(ctx context.Context, q listquery.Query) ([]models.AudienceSegment, int64, error)
	FindSegment(ctx context.Context, userID string, id uuid.UUID) (*models.AudienceSegment, error)
	CreateSignal(ctx context.Context, signal *models.IntentSignal) error
	CreateTrust(ctx context.Context, rel *models.TrustRelationship) error
	ListTrust(ctx context.Context, userID string) ([]models.TrustRelationship, error)
	CreateAlignmentScore(ctx context.Context, score *models.BuyerAlignmentScore) error
	ListAlignmentScores(ctx context.Context, q listquery.Query) ([]models.BuyerAlignmentScore, int64, error)
}

type intentRepository struct {
	db *gorm.DB
}

func NewIntentRepository(db *gorm.DB) IntentRepository {
	return &intentRepository{db: db}
}

func (r *intentRepository) CreateSegment(ctx context.Context, segment *models.AudienceSegment) error {
	return r.db.WithContext(ctx).Create(segment).Error
}

func (r *intentRepository) ListSegments(ctx context.Context, q listquery.Query) ([]models.AudienceSegment, int64, error) {
	var out []models.AudienceSegment
	total, err := listquery.Find(ctx, r.db, q, &out)
	return out, total, err
}

func (r *intentRepository) FindSegment(ctx context.Context, userID string, id uuid.UUID) (*models.AudienceSegment, error) {
	var seg models.AudienceSegment
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&seg).Error; err != nil {
		return nil, err
	}
	return &seg, nil
}

func (r *intentRepository) CreateSignal(ctx context.Context, signal *models.IntentSignal) error {
	return r.db.WithContext(ctx).Create(signal).Error
}

func (r *intentRepository) CreateTrust(ctx context.Context, rel *models.TrustRelationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *intentRepository) ListTrust(ctx context.Context, userID string) ([]models.TrustRelationship, error) {
	var out []models.TrustRelationship
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *intentRepository) CreateAlignmentScore(ctx context.Context, score *models.BuyerAlignmentScore) error {
	return r.db.WithContext(ctx).Create(score).Error
}

// ListAlignmentScores reads the shared score table. Scores are platform
// data, so the query carries no owner.
func (r *intentRepository) ListAlignmentScores(ctx context.Context, q listquery.Query) ([]models.BuyerAlignmentScore, int64, error) {
	var out []models.BuyerAlignmentScore
	total, err := listquery.Find(ctx, r.db, q, &out, withInfluencer)
	return out, total, err
}
