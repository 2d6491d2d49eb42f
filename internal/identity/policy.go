package identity

var tierRanks = map[string]int{
	TierTrial:      0,
	TierBasic:      1,
	TierPro:        2,
	TierEnterprise: 3,
}

// TierRank orders subscription tiers. Unknown tiers rank as trial.
func TierRank(tier string) int {
	return tierRanks[tier]
}

// HasRole reports whether the identity holds the required role. Admin holds
// every role.
func HasRole(id Identity, required string) bool {
	return id.Role == required || id.Role == RoleAdmin
}

// HasTier reports whether the identity's tier is at least the required tier.
func HasTier(id Identity, required string) bool {
	return TierRank(id.SubscriptionTier) >= TierRank(required)
}
