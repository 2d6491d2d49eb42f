package identity

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

const (
	TierTrial      = "trial"
	TierBasic      = "basic"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// Identity is the verified caller of a request. It is built once by the
// access gate and handed around by value.
type Identity struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	DisplayName      string `json:"name"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	Role             string `json:"role"`
	SubscriptionTier string `json:"subscription_tier"`
	EmailVerified    bool   `json:"email_verified"`
	Provider         string `json:"provider,omitempty"`
}

// WithDefaults fills role and tier when the provider did not supply them.
func (id Identity) WithDefaults() Identity {
	if id.Role == "" {
		id.Role = RoleUser
	}
	if id.SubscriptionTier == "" {
		id.SubscriptionTier = TierTrial
	}
	return id
}
