package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

func TestAuthService_Detailed_CreatesProfileOnFirstSight(t *testing.T) {
	ctx := context.Background()
	uid := uuid.MustParse(userA)
	id := identity.Identity{UserID: userA, Email: "a@fluencr.com", DisplayName: "Ada", Role: "user", SubscriptionTier: "pro"}

	profiles := new(MockProfileRepository)
	profiles.On("FindByID", ctx, uid).Return(nil, gorm.ErrRecordNotFound)
	profiles.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == uid && u.Email == "a@fluencr.com" && u.SubscriptionStatus == identity.TierTrial
	})).Return(nil)

	resp, err := NewAuthService(profiles).Detailed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, resp.Identity)
	assert.Equal(t, "Ada", resp.Profile.Name)
	profiles.AssertExpectations(t)
}

func TestAuthService_Detailed_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	uid := uuid.MustParse(userA)
	existing := &models.User{ID: uid, Name: "Ada"}

	profiles := new(MockProfileRepository)
	profiles.On("FindByID", ctx, uid).Return(nil, gorm.ErrRecordNotFound).Once()
	profiles.On("Create", ctx, mock.Anything).Return(gorm.ErrDuplicatedKey)
	profiles.On("FindByID", ctx, uid).Return(existing, nil).Once()

	resp, err := NewAuthService(profiles).Detailed(ctx, identity.Identity{UserID: userA})
	require.NoError(t, err)
	assert.Same(t, existing, resp.Profile)
}

func TestAuthService_Detailed_NonUUIDSubject(t *testing.T) {
	_, err := NewAuthService(new(MockProfileRepository)).Detailed(context.Background(), identity.Identity{UserID: "dev-user"})
	assert.Equal(t, http.StatusUnprocessableEntity, apperrors.MapErrorToHTTP(err).StatusCode)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uid := uuid.MustParse(userA)
	id := identity.Identity{UserID: userA}

	t.Run("empty body", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		_, err := NewAuthService(profiles).UpdateProfile(ctx, id, &dto.UpdateProfileRequest{})
		assert.ErrorIs(t, err, ErrNoFields)
		profiles.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("writes given fields", func(t *testing.T) {
		profiles := new(MockProfileRepository)
		profiles.On("FindByID", ctx, uid).Return(&models.User{ID: uid}, nil).Once()
		profiles.On("Update", ctx, uid, map[string]any{"company": "Acme"}).Return(nil)
		profiles.On("FindByID", ctx, uid).Return(&models.User{ID: uid, Company: ptr("Acme")}, nil).Once()

		u, err := NewAuthService(profiles).UpdateProfile(ctx, id, &dto.UpdateProfileRequest{Company: ptr("Acme")})
		require.NoError(t, err)
		assert.Equal(t, "Acme", *u.Company)
		profiles.AssertExpectations(t)
	})
}

func TestAuthService_Permissions(t *testing.T) {
	svc := NewAuthService(nil)

	p := svc.Permissions(identity.Identity{UserID: userA, Role: identity.RoleManager, SubscriptionTier: identity.TierPro})
	assert.True(t, p.CanManageUsers)
	assert.False(t, p.CanAccessAdmin)
	assert.Equal(t, 2, p.TierRank)

	p = svc.Permissions(identity.Identity{UserID: userA, Role: identity.RoleAdmin, SubscriptionTier: "gold"})
	assert.True(t, p.CanManageUsers)
	assert.True(t, p.CanAccessAdmin)
	assert.Equal(t, 0, p.TierRank)
}
