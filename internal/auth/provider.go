package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/identity"
)

// ProviderVerifier asks the identity provider's user endpoint who owns a
// token. Every call goes to the provider; nothing is cached.
type ProviderVerifier struct {
	userURL string
	apiKey  string
	client  *http.Client
}

func NewProviderVerifier(baseURL, apiKey string, timeout time.Duration) *ProviderVerifier {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &ProviderVerifier{
		userURL: strings.TrimSuffix(baseURL, "/") + "/auth/v1/user",
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type providerUser struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	EmailConfirmedAt *string        `json:"email_confirmed_at"`
	UserMetadata     map[string]any `json:"user_metadata"`
	AppMetadata      map[string]any `json:"app_metadata"`
}

func (v *ProviderVerifier) Verify(ctx context.Context, token string) (identity.Identity, error) {
	user, err := v.fetchUser(ctx, token)
	if err != nil {
		slog.Warn("token verification failed", "action", "verify_token", "error", err)
		return identity.Identity{}, ErrRejected
	}
	return user.toIdentity(), nil
}

func (v *ProviderVerifier) fetchUser(ctx context.Context, token string) (*providerUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		req.Header.Set("apikey", v.apiKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}

	var user providerUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("identity provider returned no user")
	}
	return &user, nil
}

func (u *providerUser) toIdentity() identity.Identity {
	id := identity.Identity{
		UserID:           u.ID,
		Email:            u.Email,
		DisplayName:      firstString(u.UserMetadata, "name", "full_name"),
		AvatarURL:        firstString(u.UserMetadata, "avatar_url"),
		Role:             firstString(u.UserMetadata, "role"),
		SubscriptionTier: firstString(u.UserMetadata, "subscription_tier"),
		EmailVerified:    u.EmailConfirmedAt != nil && *u.EmailConfirmedAt != "",
		Provider:         firstString(u.AppMetadata, "provider"),
	}
	if id.SubscriptionTier == "" {
		id.SubscriptionTier = firstString(u.AppMetadata, "subscription_tier")
	}
	return id.WithDefaults()
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
