package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

// MockProfileRepository is a mock implementation of ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockProfileRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	return m.Called(ctx, id, fields).Error(0)
}

// MockInfluencerRepository is a mock implementation of InfluencerRepository.
type MockInfluencerRepository struct {
	mock.Mock
}

func (m *MockInfluencerRepository) List(ctx context.Context, q listquery.Query) ([]models.Influencer, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Influencer), args.Get(1).(int64), args.Error(2)
}

func (m *MockInfluencerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Influencer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Influencer), args.Error(1)
}

func (m *MockInfluencerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInfluencerRepository) Create(ctx context.Context, influencer *models.Influencer) error {
	return m.Called(ctx, influencer).Error(0)
}

func (m *MockInfluencerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSavedInfluencerRepository is a mock implementation of SavedInfluencerRepository.
type MockSavedInfluencerRepository struct {
	mock.Mock
}

func (m *MockSavedInfluencerRepository) List(ctx context.Context, q listquery.Query) ([]models.SavedInfluencer, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.SavedInfluencer), args.Get(1).(int64), args.Error(2)
}

func (m *MockSavedInfluencerRepository) Find(ctx context.Context, userID string, influencerID uuid.UUID) (*models.SavedInfluencer, error) {
	args := m.Called(ctx, userID, influencerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedInfluencer), args.Error(1)
}

func (m *MockSavedInfluencerRepository) Create(ctx context.Context, saved *models.SavedInfluencer) error {
	return m.Called(ctx, saved).Error(0)
}

func (m *MockSavedInfluencerRepository) Update(ctx context.Context, userID string, influencerID uuid.UUID, fields map[string]any) (int64, error) {
	args := m.Called(ctx, userID, influencerID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavedInfluencerRepository) Delete(ctx context.Context, userID string, influencerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, influencerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCampaignRepository is a mock implementation of CampaignRepository.
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *MockCampaignRepository) List(ctx context.Context, q listquery.Query) ([]models.Campaign, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Campaign), args.Get(1).(int64), args.Error(2)
}

func (m *MockCampaignRepository) FindOwned(ctx context.Context, userID string, id uuid.UUID) (*models.Campaign, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *models.Campaign, fields map[string]any) error {
	return m.Called(ctx, campaign, fields).Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockAssignmentRepository is a mock implementation of AssignmentRepository.
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, a *models.CampaignInfluencer) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAssignmentRepository) List(ctx context.Context, q listquery.Query) ([]models.CampaignInfluencer, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.CampaignInfluencer), args.Get(1).(int64), args.Error(2)
}

func (m *MockAssignmentRepository) FindOwned(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (*models.CampaignInfluencer, error) {
	args := m.Called(ctx, userID, campaignID, influencerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CampaignInfluencer), args.Error(1)
}

func (m *MockAssignmentRepository) Exists(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, campaignID, influencerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *models.CampaignInfluencer, fields map[string]any) error {
	return m.Called(ctx, a, fields).Error(0)
}

func (m *MockAssignmentRepository) Delete(ctx context.Context, userID string, campaignID, influencerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, campaignID, influencerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockInteractionRepository is a mock implementation of InteractionRepository.
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Create(ctx context.Context, i *models.Interaction) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInteractionRepository) List(ctx context.Context, q listquery.Query) ([]models.Interaction, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Interaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockInteractionRepository) FindOwned(ctx context.Context, userID string, id uuid.UUID) (*models.Interaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) Update(ctx context.Context, i *models.Interaction, fields map[string]any) error {
	return m.Called(ctx, i, fields).Error(0)
}

func (m *MockInteractionRepository) Delete(ctx context.Context, userID string, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockIntentRepository is a mock implementation of IntentRepository.
type MockIntentRepository struct {
	mock.Mock
}

func (m *MockIntentRepository) CreateSegment(ctx context.Context, s *models.AudienceSegment) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockIntentRepository) ListSegments(ctx context.Context, q listquery.Query) ([]models.AudienceSegment, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.AudienceSegment), args.Get(1).(int64), args.Error(2)
}

func (m *MockIntentRepository) FindSegment(ctx context.Context, userID string, id uuid.UUID) (*models.AudienceSegment, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AudienceSegment), args.Error(1)
}

func (m *MockIntentRepository) CreateSignal(ctx context.Context, s *models.IntentSignal) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockIntentRepository) CreateTrust(ctx context.Context, r *models.TrustRelationship) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockIntentRepository) ListTrust(ctx context.Context, userID string) ([]models.TrustRelationship, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrustRelationship), args.Error(1)
}

func (m *MockIntentRepository) CreateAlignmentScore(ctx context.Context, s *models.BuyerAlignmentScore) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockIntentRepository) ListAlignmentScores(ctx context.Context, q listquery.Query) ([]models.BuyerAlignmentScore, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.BuyerAlignmentScore), args.Get(1).(int64), args.Error(2)
}

// MockAnalyticsRepository is a mock implementation of AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) PlatformSummary(ctx context.Context) (*repository.PlatformSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PlatformSummary), args.Error(1)
}

func (m *MockAnalyticsRepository) UserAnalytics(ctx context.Context, q listquery.Query) ([]repository.UserAnalytics, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]repository.UserAnalytics), args.Get(1).(int64), args.Error(2)
}

func (m *MockAnalyticsRepository) StatusDistribution(ctx context.Context) ([]repository.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusCount), args.Error(1)
}

// MockUploader is a mock implementation of storage.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}
