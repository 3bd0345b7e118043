package models

import "strings"

// TierName is a membership tier identifier, ordered Bronze < Silver < Gold.
type TierName string

const (
	TierBronze TierName = "Bronze"
	TierSilver TierName = "Silver"
	TierGold   TierName = "Gold"
)

// BenefitSet is a named collection of boolean/numeric perks.
type BenefitSet map[string]interface{}

// Copy returns a snapshot of the set. Activation stores a copy so later
// catalog edits do not retroactively change already-granted benefits.
func (b BenefitSet) Copy() BenefitSet {
	out := make(BenefitSet, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Tier is a membership level with an NFT-count threshold and a benefit set.
type Tier struct {
	Name     TierName   `json:"name"`
	MinNFTs  int        `json:"minNFTs"`
	Color    string     `json:"color"`
	Benefits BenefitSet `json:"benefits"`
}

// tiers holds the static catalog, ascending by MinNFTs.
var tiers = []Tier{
	{
		Name:    TierBronze,
		MinNFTs: 1,
		Color:   "#CD7F32",
		Benefits: BenefitSet{
			"basicAccess":     true,
			"communityChat":   true,
			"monthlyReports":  true,
			"standardSupport": true,
		},
	},
	{
		Name:    TierSilver,
		MinNFTs: 3,
		Color:   "#C0C0C0",
		Benefits: BenefitSet{
			"basicAccess":     true,
			"communityChat":   true,
			"monthlyReports":  true,
			"standardSupport": true,
			"discordAccess":   true,
			"priorityMinting": true,
			"weeklyAnalytics": true,
			"premiumSupport":  true,
			"bonusTokens":     50,
		},
	},
	{
		Name:    TierGold,
		MinNFTs: 5,
		Color:   "#FFD700",
		Benefits: BenefitSet{
			"basicAccess":           true,
			"communityChat":         true,
			"monthlyReports":        true,
			"standardSupport":       true,
			"discordAccess":         true,
			"priorityMinting":       true,
			"weeklyAnalytics":       true,
			"premiumSupport":        true,
			"exclusiveNFTs":         true,
			"premiumAnalytics":      true,
			"vipAccess":             true,
			"bonusTokens":           100,
			"personalizedPortfolio": true,
			"exclusiveEvents":       true,
			"earlyAccess":           true,
			"vipSupport":            true,
		},
	},
}

// ListTiers returns the tier catalog, ascending by MinNFTs.
func ListTiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// TierByName looks a tier up by its exact name.
func TierByName(name TierName) (Tier, bool) {
	for _, t := range tiers {
		if t.Name == name {
			return t, true
		}
	}
	return Tier{}, false
}

// ParseTierName matches a tier name case-insensitively.
func ParseTierName(s string) (TierName, bool) {
	for _, t := range tiers {
		if strings.EqualFold(string(t.Name), s) {
			return t.Name, true
		}
	}
	return "", false
}

// Rank returns the privilege order of a tier, higher is more privileged.
// Unknown tiers rank below Bronze.
func (n TierName) Rank() int {
	for i, t := range tiers {
		if t.Name == n {
			return i + 1
		}
	}
	return 0
}

// AtLeast reports whether the tier grants at least the privilege of other.
func (n TierName) AtLeast(other TierName) bool {
	return n.Rank() >= other.Rank()
}

// ResolveTier returns the highest tier whose threshold the owned-NFT count
// meets, or nil when the count is below every threshold.
func ResolveTier(nftCount int) *Tier {
	var resolved *Tier
	for i := range tiers {
		if nftCount >= tiers[i].MinNFTs {
			resolved = &tiers[i]
		}
	}
	if resolved == nil {
		return nil
	}
	t := *resolved
	t.Benefits = resolved.Benefits.Copy()
	return &t
}

// ResolveTierFromHint picks a tier from badge/collection identifier hints.
// Both hints are searched case-insensitively for tier name substrings,
// preferring the highest-privilege match; Bronze is the fallback when no
// tier name appears. The substring matching mirrors how BitBadges claim
// payloads encode the tier and is intentionally loose.
func ResolveTierFromHint(badgeID, collectionID string) Tier {
	badge := strings.ToLower(badgeID)
	collection := strings.ToLower(collectionID)

	for i := len(tiers) - 1; i >= 0; i-- {
		name := strings.ToLower(string(tiers[i].Name))
		if strings.Contains(badge, name) || strings.Contains(collection, name) {
			t := tiers[i]
			t.Benefits = t.Benefits.Copy()
			return t
		}
	}

	t := tiers[0]
	t.Benefits = t.Benefits.Copy()
	return t
}
