package models

import "time"

// VIPEvent is a Gold-only community event.
type VIPEvent struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SpotsLeft   int    `json:"spotsLeft"`
	MaxSpots    int    `json:"maxSpots"`
}

// RSVPRequest reserves a spot at a VIP event.
type RSVPRequest struct {
	EventID     int    `json:"eventId" binding:"required"`
	UserAddress string `json:"userAddress" binding:"required"`
}

// DiscordInviteRequest asks for a tier community invite.
type DiscordInviteRequest struct {
	UserAddress string `json:"userAddress" binding:"required"`
	Tier        string `json:"tier" binding:"required"`
}

// AirdropRequest triggers the monthly Gold airdrop. Empty fields fall back
// to the standard title and description.
type AirdropRequest struct {
	NFTTitle       string `json:"nftTitle"`
	NFTDescription string `json:"nftDescription"`
}

// RecipientStatus reports per-member airdrop notification delivery.
type RecipientStatus struct {
	Address string `json:"address"`
	Status  string `json:"status"`
}

// Airdrop notification statuses.
const (
	AirdropEmailSent   = "email_sent"
	AirdropNoEmail     = "no_email"
	AirdropEmailFailed = "email_failed"
)

// AirdropResult summarizes one airdrop run.
type AirdropResult struct {
	TokenURI    string            `json:"tokenURI,omitempty"`
	MemberCount int               `json:"memberCount"`
	Recipients  []RecipientStatus `json:"recipients"`
}

// GoldAnalytics is the VIP dashboard payload. Numeric values are formatted
// strings, matching what the deployed front end renders directly.
type GoldAnalytics struct {
	PortfolioValue     string     `json:"portfolioValue"`
	TotalAirdrops      string     `json:"totalAirdrops"`
	VIPDays            string     `json:"vipDays"`
	TotalSavings       string     `json:"totalSavings"`
	MemberSince        *time.Time `json:"memberSince,omitempty"`
	ExclusiveNFTsOwned string     `json:"exclusiveNFTsOwned,omitempty"`
	VIPEventsAttended  string     `json:"vipEventsAttended,omitempty"`
}
