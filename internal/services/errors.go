package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/apperrors"
)

var (
	ErrCampaignNotFound    = apperrors.New(apperrors.ErrNotFound, "Campaign not found")
	ErrInfluencerNotFound  = apperrors.New(apperrors.ErrNotFound, "Influencer not found")
	ErrNotInList           = apperrors.New(apperrors.ErrNotFound, "Influencer not found in your list")
	ErrAssignmentNotFound  = apperrors.New(apperrors.ErrNotFound, "Influencer not assigned to this campaign")
	ErrInteractionNotFound = apperrors.New(apperrors.ErrNotFound, "Interaction not found")
	ErrSegmentNotFound     = apperrors.New(apperrors.ErrNotFound, "Audience segment not found")
	ErrProfileNotFound     = apperrors.New(apperrors.ErrNotFound, "Profile not found")

	ErrAlreadySaved    = apperrors.New(apperrors.ErrConflict, "Influencer already in your list")
	ErrAlreadyAssigned = apperrors.New(apperrors.ErrConflict, "Influencer already assigned to this campaign")
	ErrNoFields        = apperrors.New(apperrors.ErrConflict, "No fields to update")

	ErrStorageDisabled = apperrors.New(apperrors.ErrUnavailable, "File storage is not configured")
)

// notFound swaps a missing-row error for the caller's domain error.
func notFound(err error, domain error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain
	}
	return err
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func ptr[T any](v T) *T {
	return &v
}
