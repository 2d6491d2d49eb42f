package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/utm"
)

const (
	userA = "11111111-1111-1111-1111-111111111111"
	userB = "22222222-2222-2222-2222-222222222222"
)

type campaignFixture struct {
	campaigns   *MockCampaignRepository
	assignments *MockAssignmentRepository
	influencers *MockInfluencerRepository
	svc         *CampaignService
}

func newCampaignFixture() *campaignFixture {
	f := &campaignFixture{
		campaigns:   new(MockCampaignRepository),
		assignments: new(MockAssignmentRepository),
		influencers: new(MockInfluencerRepository),
	}
	f.svc = NewCampaignService(f.campaigns, f.assignments, f.influencers, utm.NewGenerator("https://fluencr.com"))
	return f
}

func TestCampaignService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to planning", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("Create", ctx, mock.MatchedBy(func(c *models.Campaign) bool {
			return c.UserID == userA && c.Status == models.CampaignStatusPlanning && c.Goals != nil
		})).Return(nil)

		c, err := f.svc.Create(ctx, userA, &dto.CreateCampaignRequest{Name: "Q3 launch"})
		require.NoError(t, err)
		assert.Equal(t, "Q3 launch", c.Name)
		f.campaigns.AssertExpectations(t)
	})

	t.Run("negative budget is rejected", func(t *testing.T) {
		f := newCampaignFixture()
		budget := decimal.NewFromInt(-5)

		_, err := f.svc.Create(ctx, userA, &dto.CreateCampaignRequest{Name: "x", Budget: &budget})
		assert.Equal(t, http.StatusUnprocessableEntity, apperrors.MapErrorToHTTP(err).StatusCode)
		f.campaigns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCampaignService_List_ScopesToCaller(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture()
	p := listquery.Params{Page: 2, Limit: 10, SortBy: "password", SortOrder: "asc"}

	f.campaigns.On("List", ctx, mock.MatchedBy(func(q listquery.Query) bool {
		return q.Owner == userA && q.Sort == listquery.CreatedAtDesc && len(q.Filters) == 1 && q.Filters[0].Column == "status"
	})).Return([]models.Campaign{{Name: "a"}}, int64(11), nil)

	rows, page, err := f.svc.List(ctx, userA, p, dto.CampaignFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, listquery.Page{Page: 2, Limit: 10, Total: 11, TotalPages: 2, HasNext: false, HasPrev: true}, page)
}

func TestCampaignService_Get_OtherUsersCampaignIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture()
	id := uuid.New()
	f.campaigns.On("FindOwned", ctx, userB, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Get(ctx, userB, id)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.Equal(t, http.StatusNotFound, apperrors.MapErrorToHTTP(err).StatusCode)
}

func TestCampaignService_Update_NoFields(t *testing.T) {
	f := newCampaignFixture()
	_, err := f.svc.Update(context.Background(), userA, uuid.New(), &dto.UpdateCampaignRequest{})
	assert.ErrorIs(t, err, ErrNoFields)
	assert.Equal(t, http.StatusBadRequest, apperrors.MapErrorToHTTP(err).StatusCode)
	f.campaigns.AssertNotCalled(t, "FindOwned", mock.Anything, mock.Anything, mock.Anything)
}

func TestCampaignService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture()
	id := uuid.New()
	f.campaigns.On("Delete", ctx, userA, id).Return(int64(1), nil).Once()
	f.campaigns.On("Delete", ctx, userB, id).Return(int64(0), nil).Once()

	assert.NoError(t, f.svc.Delete(ctx, userA, id))
	assert.ErrorIs(t, f.svc.Delete(ctx, userB, id), ErrCampaignNotFound)
}

func TestCampaignService_AssignInfluencer(t *testing.T) {
	ctx := context.Background()
	campaignID, influencerID := uuid.New(), uuid.New()
	req := &dto.AssignInfluencerRequest{
		InfluencerID: influencerID.String(),
		UTMSource:    "linkedin",
		UTMMedium:    "social",
		UTMCampaign:  "q3 launch",
	}

	t.Run("stores params and link", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID, UserID: userA}, nil)
		f.influencers.On("Exists", ctx, influencerID).Return(true, nil)
		f.assignments.On("Exists", ctx, userA, campaignID, influencerID).Return(false, nil)
		f.assignments.On("Create", ctx, mock.Anything).Return(nil)

		a, err := f.svc.AssignInfluencer(ctx, userA, campaignID, req)
		require.NoError(t, err)
		require.NotNil(t, a.UTMURL)
		assert.Equal(t, "https://fluencr.com?utm_source=linkedin&utm_medium=social&utm_campaign=q3+launch", *a.UTMURL)
		assert.Equal(t, models.AssignmentStatusPlanned, a.Status)
		assert.Nil(t, a.UTMContent)
	})

	t.Run("second assignment is rejected without a write", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID, UserID: userA}, nil)
		f.influencers.On("Exists", ctx, influencerID).Return(true, nil)
		f.assignments.On("Exists", ctx, userA, campaignID, influencerID).Return(true, nil)

		_, err := f.svc.AssignInfluencer(ctx, userA, campaignID, req)
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
		assert.Equal(t, http.StatusBadRequest, apperrors.MapErrorToHTTP(err).StatusCode)
		f.assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("race on the unique index is reported the same way", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID, UserID: userA}, nil)
		f.influencers.On("Exists", ctx, influencerID).Return(true, nil)
		f.assignments.On("Exists", ctx, userA, campaignID, influencerID).Return(false, nil)
		f.assignments.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)

		_, err := f.svc.AssignInfluencer(ctx, userA, campaignID, req)
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
	})

	t.Run("unknown influencer", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID}, nil)
		f.influencers.On("Exists", ctx, influencerID).Return(false, nil)

		_, err := f.svc.AssignInfluencer(ctx, userA, campaignID, req)
		assert.ErrorIs(t, err, ErrInfluencerNotFound)
	})

	t.Run("campaign of another user", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userB, campaignID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.AssignInfluencer(ctx, userB, campaignID, req)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
		f.influencers.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(nil, errors.New("connection reset"))

		_, err := f.svc.AssignInfluencer(ctx, userA, campaignID, req)
		assert.Equal(t, http.StatusInternalServerError, apperrors.MapErrorToHTTP(err).StatusCode)
	})
}

func TestCampaignService_UpdateAssignment(t *testing.T) {
	ctx := context.Background()
	campaignID, influencerID := uuid.New(), uuid.New()

	stored := func() *models.CampaignInfluencer {
		a := &models.CampaignInfluencer{ID: uuid.New(), UserID: userA, CampaignID: campaignID, InfluencerID: influencerID, Status: "planned"}
		a.SetUTM(utm.Params{Source: "linkedin", Medium: "social", Campaign: "q3"}, nil)
		return a
	}

	t.Run("merges patch over stored fields", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID}, nil)
		f.assignments.On("FindOwned", ctx, userA, campaignID, influencerID).Return(stored(), nil)
		f.assignments.On("Update", ctx, mock.Anything, mock.MatchedBy(func(fields map[string]any) bool {
			_, hasURL := fields["utm_url"]
			_, hasStatus := fields["status"]
			return hasURL && !hasStatus
		})).Return(nil)

		a, err := f.svc.UpdateAssignment(ctx, userA, campaignID, influencerID, &dto.UpdateAssignmentRequest{UTMTerm: ptr("crm")})
		require.NoError(t, err)
		require.NotNil(t, a.UTMURL)
		assert.Equal(t, "https://fluencr.com?utm_source=linkedin&utm_medium=social&utm_campaign=q3&utm_term=crm", *a.UTMURL)
		assert.Equal(t, "linkedin", *a.UTMSource)
	})

	t.Run("clearing the link fields drops the link", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID}, nil)
		f.assignments.On("FindOwned", ctx, userA, campaignID, influencerID).Return(stored(), nil)
		f.assignments.On("Update", ctx, mock.Anything, mock.Anything).Return(nil)

		a, err := f.svc.UpdateAssignment(ctx, userA, campaignID, influencerID, &dto.UpdateAssignmentRequest{
			UTMSource: ptr(""), UTMMedium: ptr(""), UTMCampaign: ptr(""),
		})
		require.NoError(t, err)
		assert.Nil(t, a.UTMURL)
		assert.Nil(t, a.UTMSource)
	})

	t.Run("status only leaves utm untouched", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID}, nil)
		f.assignments.On("FindOwned", ctx, userA, campaignID, influencerID).Return(stored(), nil)
		f.assignments.On("Update", ctx, mock.Anything, map[string]any{"status": "active"}).Return(nil)

		a, err := f.svc.UpdateAssignment(ctx, userA, campaignID, influencerID, &dto.UpdateAssignmentRequest{Status: ptr("active")})
		require.NoError(t, err)
		assert.Equal(t, "active", a.Status)
		f.assignments.AssertExpectations(t)
	})

	t.Run("empty body", func(t *testing.T) {
		f := newCampaignFixture()
		_, err := f.svc.UpdateAssignment(ctx, userA, campaignID, influencerID, &dto.UpdateAssignmentRequest{})
		assert.ErrorIs(t, err, ErrNoFields)
	})

	t.Run("not assigned", func(t *testing.T) {
		f := newCampaignFixture()
		f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID}, nil)
		f.assignments.On("FindOwned", ctx, userA, campaignID, influencerID).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.UpdateAssignment(ctx, userA, campaignID, influencerID, &dto.UpdateAssignmentRequest{Notes: ptr("x")})
		assert.ErrorIs(t, err, ErrAssignmentNotFound)
	})
}

func TestCampaignService_RemoveAssignment(t *testing.T) {
	ctx := context.Background()
	f := newCampaignFixture()
	campaignID, influencerID := uuid.New(), uuid.New()
	f.campaigns.On("FindOwned", ctx, userA, campaignID).Return(&models.Campaign{ID: campaignID}, nil)
	f.assignments.On("Delete", ctx, userA, campaignID, influencerID).Return(int64(0), nil)

	assert.ErrorIs(t, f.svc.RemoveAssignment(ctx, userA, campaignID, influencerID), ErrAssignmentNotFound)
}
