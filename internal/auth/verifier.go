// Package auth exchanges bearer tokens for verified identities.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
)

// ErrRejected is the only error a Verifier returns to callers.
var ErrRejected = errors.New("token rejected")

// Verifier turns a bearer token into an identity. Implementations must be
// safe for concurrent use.
type Verifier interface {
	Verify(ctx context.Context, token string) (identity.Identity, error)
}

// NewVerifier builds the verifier chain for cfg: local JWT verification when
// a signing secret is configured, the provider's user endpoint otherwise, and
// the development token outside production.
func NewVerifier(cfg *config.Config) Verifier {
	var v Verifier
	switch {
	case cfg.SupabaseJWTSecret != "":
		v = NewJWTVerifier(cfg.SupabaseJWTSecret)
	case cfg.SupabaseURL != "":
		v = NewProviderVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.AuthTimeout)
	default:
		v = rejectAll{}
	}

	if !cfg.IsProduction() && cfg.DevBypassToken != "" {
		slog.Warn("development bypass token is active; every holder is an enterprise admin", "env", cfg.Env)
		v = NewDevBypass(cfg.DevBypassToken, v)
	}
	return v
}

type rejectAll struct{}

func (rejectAll) Verify(context.Context, string) (identity.Identity, error) {
	return identity.Identity{}, ErrRejected
}
