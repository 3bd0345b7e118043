package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTiersOrdered(t *testing.T) {
	tiers := ListTiers()
	require.Len(t, tiers, 3)

	for i := 1; i < len(tiers); i++ {
		assert.Greater(t, tiers[i].MinNFTs, tiers[i-1].MinNFTs)
	}

	assert.Equal(t, TierBronze, tiers[0].Name)
	assert.Equal(t, TierGold, tiers[2].Name)
}

func TestResolveTierThresholds(t *testing.T) {
	cases := []struct {
		nftCount int
		want     TierName
		none     bool
	}{
		{nftCount: 0, none: true},
		{nftCount: 1, want: TierBronze},
		{nftCount: 2, want: TierBronze},
		{nftCount: 3, want: TierSilver},
		{nftCount: 4, want: TierSilver},
		{nftCount: 5, want: TierGold},
		{nftCount: 100, want: TierGold},
	}

	for _, tc := range cases {
		tier := ResolveTier(tc.nftCount)
		if tc.none {
			assert.Nil(t, tier, "count %d", tc.nftCount)
			continue
		}
		require.NotNil(t, tier, "count %d", tc.nftCount)
		assert.Equal(t, tc.want, tier.Name, "count %d", tc.nftCount)
	}
}

func TestResolveTierMonotonic(t *testing.T) {
	prev := 0
	for n := 0; n <= 20; n++ {
		rank := 0
		if tier := ResolveTier(n); tier != nil {
			rank = tier.Name.Rank()
		}
		assert.GreaterOrEqual(t, rank, prev, "count %d", n)
		prev = rank
	}
}

func TestResolveTierSnapshotsBenefits(t *testing.T) {
	first := ResolveTier(5)
	require.NotNil(t, first)
	first.Benefits["bonusTokens"] = 9999

	second := ResolveTier(5)
	require.NotNil(t, second)
	assert.Equal(t, 100, second.Benefits["bonusTokens"])
}

func TestResolveTierFromHint(t *testing.T) {
	cases := []struct {
		name         string
		badgeID      string
		collectionID string
		want         TierName
	}{
		{name: "gold badge", badgeID: "gold-badge", want: TierGold},
		{name: "silver collection", collectionID: "treasury-SILVER-2024", want: TierSilver},
		{name: "bronze badge", badgeID: "bronze-1", want: TierBronze},
		{name: "no hint defaults to bronze", badgeID: "badge-42", collectionID: "collection-9", want: TierBronze},
		{name: "highest match wins", badgeID: "silver-and-gold-badge", want: TierGold},
		{name: "highest match across hints", badgeID: "silver-badge", collectionID: "gold-collection", want: TierGold},
		{name: "case insensitive", badgeID: "GOLD-VIP", want: TierGold},
		{name: "empty hints", want: TierBronze},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier := ResolveTierFromHint(tc.badgeID, tc.collectionID)
			assert.Equal(t, tc.want, tier.Name)
		})
	}
}

func TestParseTierName(t *testing.T) {
	name, ok := ParseTierName("gold")
	require.True(t, ok)
	assert.Equal(t, TierGold, name)

	name, ok = ParseTierName("Silver")
	require.True(t, ok)
	assert.Equal(t, TierSilver, name)

	_, ok = ParseTierName("Platinum")
	assert.False(t, ok)
}

func TestTierRankOrdering(t *testing.T) {
	assert.True(t, TierGold.AtLeast(TierSilver))
	assert.True(t, TierSilver.AtLeast(TierSilver))
	assert.False(t, TierBronze.AtLeast(TierSilver))
	assert.Equal(t, 0, TierName("Platinum").Rank())
}
