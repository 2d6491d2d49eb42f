package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
)

// JWTVerifier checks provider-issued HS256 access tokens locally.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

type providerClaims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	AppMetadata  map[string]any `json:"app_metadata"`
	jwt.RegisteredClaims
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (identity.Identity, error) {
	var claims providerClaims
	parsed, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return identity.Identity{}, ErrRejected
	}

	id := identity.Identity{
		UserID:           claims.Subject,
		Email:            claims.Email,
		DisplayName:      firstString(claims.UserMetadata, "name", "full_name"),
		AvatarURL:        firstString(claims.UserMetadata, "avatar_url"),
		Role:             firstString(claims.UserMetadata, "role"),
		SubscriptionTier: firstString(claims.UserMetadata, "subscription_tier"),
		Provider:         firstString(claims.AppMetadata, "provider"),
	}
	if id.SubscriptionTier == "" {
		id.SubscriptionTier = firstString(claims.AppMetadata, "subscription_tier")
	}
	if verified, ok := claims.UserMetadata["email_verified"].(bool); ok {
		id.EmailVerified = verified
	}
	return id.WithDefaults(), nil
}
