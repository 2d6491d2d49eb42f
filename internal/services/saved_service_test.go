package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

func TestSavedInfluencerService_Add(t *testing.T) {
	ctx := context.Background()
	influencerID := uuid.New()
	req := &dto.SaveInfluencerRequest{InfluencerID: influencerID.String(), Priority: 3}

	t.Run("saves with defaults", func(t *testing.T) {
		saved, influencers := new(MockSavedInfluencerRepository), new(MockInfluencerRepository)
		influencers.On("Exists", ctx, influencerID).Return(true, nil)
		saved.On("Find", ctx, userA, influencerID).Return(nil, gorm.ErrRecordNotFound)
		saved.On("Create", ctx, mock.MatchedBy(func(s *models.SavedInfluencer) bool {
			return s.UserID == userA && s.Status == models.SavedStatusSaved && s.Priority == 3 && s.Tags != nil
		})).Return(nil)

		svc := NewSavedInfluencerService(saved, influencers)
		s, err := svc.Add(ctx, userA, req)
		require.NoError(t, err)
		assert.Equal(t, influencerID, s.InfluencerID)
		saved.AssertExpectations(t)
	})

	t.Run("already in list", func(t *testing.T) {
		saved, influencers := new(MockSavedInfluencerRepository), new(MockInfluencerRepository)
		influencers.On("Exists", ctx, influencerID).Return(true, nil)
		saved.On("Find", ctx, userA, influencerID).Return(&models.SavedInfluencer{}, nil)

		_, err := NewSavedInfluencerService(saved, influencers).Add(ctx, userA, req)
		assert.ErrorIs(t, err, ErrAlreadySaved)
		saved.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown influencer", func(t *testing.T) {
		saved, influencers := new(MockSavedInfluencerRepository), new(MockInfluencerRepository)
		influencers.On("Exists", ctx, influencerID).Return(false, nil)

		_, err := NewSavedInfluencerService(saved, influencers).Add(ctx, userA, req)
		assert.ErrorIs(t, err, ErrInfluencerNotFound)
	})
}

func TestSavedInfluencerService_Update(t *testing.T) {
	ctx := context.Background()
	influencerID := uuid.New()

	t.Run("no fields", func(t *testing.T) {
		saved := new(MockSavedInfluencerRepository)
		_, err := NewSavedInfluencerService(saved, nil).Update(ctx, userA, influencerID, &dto.UpdateSavedInfluencerRequest{})
		assert.ErrorIs(t, err, ErrNoFields)
		saved.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("row of another user", func(t *testing.T) {
		saved := new(MockSavedInfluencerRepository)
		saved.On("Update", ctx, userB, influencerID, map[string]any{"relationship_strength": 80}).Return(int64(0), nil)

		_, err := NewSavedInfluencerService(saved, nil).SetRelationshipStrength(ctx, userB, influencerID, 80)
		assert.ErrorIs(t, err, ErrNotInList)
	})

	t.Run("follow-up date", func(t *testing.T) {
		at := time.Date(2026, 11, 2, 9, 0, 0, 0, time.UTC)
		saved := new(MockSavedInfluencerRepository)
		saved.On("Update", ctx, userA, influencerID, map[string]any{"follow_up_date": at}).Return(int64(1), nil)
		saved.On("Find", ctx, userA, influencerID).Return(&models.SavedInfluencer{FollowUpDate: &at}, nil)

		s, err := NewSavedInfluencerService(saved, nil).SetFollowUp(ctx, userA, influencerID, at)
		require.NoError(t, err)
		assert.Equal(t, at, *s.FollowUpDate)
	})
}

func TestSavedInfluencerService_Check(t *testing.T) {
	ctx := context.Background()
	influencerID := uuid.New()
	saved := new(MockSavedInfluencerRepository)
	saved.On("Find", ctx, userA, influencerID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := NewSavedInfluencerService(saved, nil).Check(ctx, userA, influencerID)
	require.NoError(t, err)
	assert.False(t, resp.IsSaved)
	assert.Nil(t, resp.Saved)
}

func TestSavedInfluencerService_CRMSort(t *testing.T) {
	ctx := context.Background()
	saved := new(MockSavedInfluencerRepository)
	saved.On("List", ctx, mock.MatchedBy(func(q listquery.Query) bool {
		return q.Owner == userA && q.Sort == listquery.Sort{Field: "follow_up_date", Desc: false}
	})).Return([]models.SavedInfluencer{}, int64(0), nil)

	p := listquery.DefaultParams()
	p.SortBy, p.SortOrder = "follow_up_date", "asc"
	_, page, err := NewSavedInfluencerService(saved, nil).CRM(ctx, userA, p, dto.SavedFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, page.TotalPages)
	saved.AssertExpectations(t)
}
