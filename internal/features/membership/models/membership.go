package models

import (
	"strings"
	"time"
)

// DiscordInfo is the Discord identity attached to a claim, if any.
type DiscordInfo struct {
	Username string `json:"username,omitempty"`
	ID       string `json:"id,omitempty"`
}

// MembershipRecord is one activated (address, tier) membership. Benefits are
// a snapshot taken at activation time.
type MembershipRecord struct {
	Address   string      `json:"address"`
	Tier      TierName    `json:"tier"`
	ClaimID   string      `json:"claimId,omitempty"`
	Email     string      `json:"email,omitempty"`
	Discord   DiscordInfo `json:"discord,omitempty"`
	Benefits  BenefitSet  `json:"benefits"`
	ClaimedAt time.Time   `json:"claimedAt"`
}

// NormalizeAddress lower-cases a wallet address for use as an identity key.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// BenefitStatus is the benefit query result for one (address, tier) pair.
// Absence is a normal state, reported as Active=false.
type BenefitStatus struct {
	Active    bool       `json:"active"`
	Benefits  BenefitSet `json:"benefits,omitempty"`
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`
}

// MembershipSummary lists every tier activated for an address.
type MembershipSummary struct {
	HasMembership  bool                           `json:"hasMembership"`
	Tiers          []TierName                     `json:"tiers,omitempty"`
	MembershipData map[TierName]*MembershipRecord `json:"membershipData,omitempty"`
}
