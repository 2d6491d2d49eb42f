package auth

import (
	"context"
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
)

// DevIdentity is the built-in admin returned for the development token.
var DevIdentity = identity.Identity{
	UserID:           "70fd2b83-5c83-4660-8131-fa136bd39f42",
	Email:            "admin@fluencr.com",
	DisplayName:      "Fluencr Admin",
	Role:             identity.RoleAdmin,
	SubscriptionTier: identity.TierEnterprise,
	EmailVerified:    true,
	Provider:         "demo",
}

// DevBypass answers the development token locally and passes every other
// token to next.
type DevBypass struct {
	token string
	next  Verifier
}

func NewDevBypass(token string, next Verifier) *DevBypass {
	return &DevBypass{token: token, next: next}
}

func (d *DevBypass) Verify(ctx context.Context, token string) (identity.Identity, error) {
	if subtle.ConstantTimeCompare([]byte(token), []byte(d.token)) == 1 {
		return DevIdentity, nil
	}
	return d.next.Verify(ctx, token)
}
