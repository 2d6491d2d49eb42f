package dto

import (
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	Company   *string `json:"company" validate:"omitempty,max=255"`
	JobTitle  *string `json:"job_title" validate:"omitempty,max=255"`
}

type DetailedProfileResponse struct {
	identity.Identity
	Profile *models.User `json:"profile"`
}

type PermissionsResponse struct {
	UserID           string `json:"user_id"`
	Role             string `json:"role"`
	SubscriptionTier string `json:"subscription_tier"`
	TierRank         int    `json:"tier_rank"`
	CanManageUsers   bool   `json:"can_manage_users"`
	CanAccessAdmin   bool   `json:"can_access_admin"`
}

type AuthStatusResponse struct {
	Authenticated bool               `json:"authenticated"`
	User          *identity.Identity `json:"user,omitempty"`
}

func (r UpdateProfileRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.AvatarURL != nil {
		fields["avatar_url"] = *r.AvatarURL
	}
	if r.Company != nil {
		fields["company"] = *r.Company
	}
	if r.JobTitle != nil {
		fields["job_title"] = *r.JobTitle
	}
	return fields
}
