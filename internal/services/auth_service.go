package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/repository"
)

// AuthService serves the caller's own profile. Credentials live at the
// identity provider; this service only mirrors a profile row per identity.
type AuthService struct {
	profiles repository.ProfileRepository
}

func NewAuthService(profiles repository.ProfileRepository) *AuthService {
	return &AuthService{profiles: profiles}
}

// Detailed returns the identity plus its profile row, creating the row on
// first sight.
func (s *AuthService) Detailed(ctx context.Context, id identity.Identity) (*dto.DetailedProfileResponse, error) {
	user, err := s.ensureProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.DetailedProfileResponse{Identity: id, Profile: user}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, id identity.Identity, req *dto.UpdateProfileRequest) (*models.User, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	user, err := s.ensureProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.Update(ctx, user.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", notFound(err, ErrProfileNotFound))
	}
	updated, err := s.profiles.FindByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return updated, nil
}

// Permissions summarizes what the caller's role and tier unlock.
func (s *AuthService) Permissions(id identity.Identity) dto.PermissionsResponse {
	return dto.PermissionsResponse{
		UserID:           id.UserID,
		Role:             id.Role,
		SubscriptionTier: id.SubscriptionTier,
		TierRank:         identity.TierRank(id.SubscriptionTier),
		CanManageUsers:   identity.HasRole(id, identity.RoleManager),
		CanAccessAdmin:   identity.HasRole(id, identity.RoleAdmin),
	}
}

func (s *AuthService) ensureProfile(ctx context.Context, id identity.Identity) (*models.User, error) {
	uid, err := uuid.Parse(id.UserID)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrValidation, "User id is not a valid UUID")
	}

	user, err := s.profiles.FindByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	user = &models.User{
		ID:                 uid,
		Email:              id.Email,
		Name:               id.DisplayName,
		Role:               id.Role,
		SubscriptionStatus: identity.TierTrial,
	}
	if id.AvatarURL != "" {
		user.AvatarURL = ptr(id.AvatarURL)
	}
	if err := s.profiles.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return s.profiles.FindByID(ctx, uid)
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return user, nil
}
