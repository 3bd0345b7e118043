package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"nft-treasury-backend/internal/common/logger"
	"nft-treasury-backend/internal/common/validation"
	membershipmodels "nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository"
	"nft-treasury-backend/internal/features/perks/models"
	"nft-treasury-backend/internal/platform/pinata"
)

var (
	ErrGoldRequired       = errors.New("gold membership required")
	ErrMembershipRequired = errors.New("membership tier required")
	ErrEmailRequired      = errors.New("valid email required")
	ErrUnknownEvent       = errors.New("unknown event")
)

const (
	defaultAirdropTitle       = "Gold Monthly Airdrop"
	defaultAirdropDescription = "Exclusive monthly airdrop for Gold VIP members"
	airdropImageURI           = "https://gateway.pinata.cloud/ipfs/QmGoldAirdropPlaceholder"

	// Rough valuation constants used by the VIP dashboard: average floor
	// price per NFT in ETH and the ETH/USD estimate.
	estimatedNFTPriceETH = 0.01
	ethUSDEstimate       = 2000
	goldDiscountRate     = 0.3
)

// MetadataPinner pins airdrop metadata to IPFS.
type MetadataPinner interface {
	PinJSON(ctx context.Context, content interface{}) (*pinata.PinResult, error)
	GatewayURL(ipfsHash string) string
}

// Mailer sends perk-related emails, best-effort.
type Mailer interface {
	SendAirdrop(ctx context.Context, email, address, nftTitle, tokenURI string) error
	SendEventRSVP(ctx context.Context, email, address, eventTitle string, eventID int) error
	SendDiscordInvite(ctx context.Context, email, address string, tier membershipmodels.TierName) error
}

type PerksService interface {
	ListVIPEvents(ctx context.Context) []models.VIPEvent
	RSVP(ctx context.Context, eventID int, address string) (*models.VIPEvent, error)
	SendDiscordInvite(ctx context.Context, address, tier string) (string, error)
	RunGoldAirdrop(ctx context.Context, title, description string) (*models.AirdropResult, error)
	GoldAnalytics(ctx context.Context, address string) (*models.GoldAnalytics, error)
}

type perksService struct {
	members repository.MembershipRepository
	pinner  MetadataPinner
	mailer  Mailer
}

func NewPerksService(members repository.MembershipRepository, pinner MetadataPinner, mailer Mailer) PerksService {
	return &perksService{
		members: members,
		pinner:  pinner,
		mailer:  mailer,
	}
}

// vipEvents is a static catalog until events move to a real backing store.
var vipEvents = []models.VIPEvent{
	{
		ID:          1,
		Title:       "Gold Ape Collection Reveal",
		Description: "Exclusive preview of the new premium ape NFT collection with artist discussion and early access minting.",
		Emoji:       "🦍",
		Date:        "Feb 25, 2025",
		Time:        "7:00 PM EST",
		SpotsLeft:   15,
		MaxSpots:    20,
	},
	{
		ID:          2,
		Title:       "VIP NFT Trading Masterclass",
		Description: "Private session with top NFT traders sharing advanced strategies and insights on premium collections.",
		Emoji:       "📈",
		Date:        "Mar 5, 2025",
		Time:        "6:00 PM EST",
		SpotsLeft:   8,
		MaxSpots:    15,
	},
	{
		ID:          3,
		Title:       "Gold Ape Holders Discord AMA",
		Description: "Live AMA with NFT Treasury founders, roadmap reveals, and exclusive Gold ape collection insights.",
		Emoji:       "🎤",
		Date:        "Mar 12, 2025",
		Time:        "8:00 PM EST",
		SpotsLeft:   25,
		MaxSpots:    50,
	},
}

func (s *perksService) ListVIPEvents(_ context.Context) []models.VIPEvent {
	out := make([]models.VIPEvent, len(vipEvents))
	copy(out, vipEvents)
	return out
}

func (s *perksService) RSVP(ctx context.Context, eventID int, address string) (*models.VIPEvent, error) {
	var event *models.VIPEvent
	for i := range vipEvents {
		if vipEvents[i].ID == eventID {
			event = &vipEvents[i]
			break
		}
	}
	if event == nil {
		return nil, ErrUnknownEvent
	}

	gold, err := s.members.Get(ctx, address, membershipmodels.TierGold)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGoldRequired
		}
		return nil, err
	}

	// Confirmation mail is best-effort; the RSVP itself already stands.
	if s.mailer != nil {
		if err := s.mailer.SendEventRSVP(ctx, gold.Email, gold.Address, event.Title, event.ID); err != nil {
			logger.Warn().
				Err(err).
				Str("address", gold.Address).
				Int("event_id", event.ID).
				Msg("RSVP confirmation mail failed")
		}
	}

	logger.Info().
		Str("address", gold.Address).
		Str("event", event.Title).
		Msg("VIP event RSVP confirmed")

	out := *event
	return &out, nil
}

func (s *perksService) SendDiscordInvite(ctx context.Context, address, tier string) (string, error) {
	requested, ok := membershipmodels.ParseTierName(tier)
	if !ok || requested == membershipmodels.TierBronze {
		return "", ErrMembershipRequired
	}

	records, err := s.members.GetAll(ctx, address)
	if err != nil {
		return "", err
	}

	// The invite goes out for the highest qualifying tier the member holds.
	var member *membershipmodels.MembershipRecord
	for _, candidate := range []membershipmodels.TierName{membershipmodels.TierGold, membershipmodels.TierSilver} {
		if record, ok := records[candidate]; ok {
			member = record
			break
		}
	}
	if member == nil || !member.Tier.AtLeast(requested) {
		return "", ErrMembershipRequired
	}

	if validation.ValidateEmail(member.Email) != nil {
		return "", ErrEmailRequired
	}

	if s.mailer != nil {
		if err := s.mailer.SendDiscordInvite(ctx, member.Email, member.Address, member.Tier); err != nil {
			return "", fmt.Errorf("send discord invite: %w", err)
		}
	}

	logger.Info().
		Str("address", member.Address).
		Str("tier", string(member.Tier)).
		Msg("Discord invite sent")

	return member.Email, nil
}

func (s *perksService) RunGoldAirdrop(ctx context.Context, title, description string) (*models.AirdropResult, error) {
	if title == "" {
		title = defaultAirdropTitle
	}
	if description == "" {
		description = defaultAirdropDescription
	}

	goldMembers, err := s.members.ListByTier(ctx, membershipmodels.TierGold)
	if err != nil {
		return nil, err
	}
	if len(goldMembers) == 0 {
		return &models.AirdropResult{Recipients: []models.RecipientStatus{}}, nil
	}

	now := time.Now().UTC()
	metadata := map[string]interface{}{
		"name":        title,
		"description": description,
		"image":       airdropImageURI,
		"attributes": []map[string]interface{}{
			{"trait_type": "Type", "value": "Gold Airdrop"},
			{"trait_type": "Month", "value": now.Format("January 2006")},
			{"trait_type": "Recipient Count", "value": strconv.Itoa(len(goldMembers))},
			{"trait_type": "Exclusivity", "value": "Gold VIP Only"},
			{"trait_type": "Airdrop Date", "value": now.Format("2006-01-02")},
		},
	}

	pinned, err := s.pinner.PinJSON(ctx, metadata)
	if err != nil {
		return nil, fmt.Errorf("pin airdrop metadata: %w", err)
	}
	tokenURI := s.pinner.GatewayURL(pinned.IpfsHash)

	logger.Info().
		Str("token_uri", tokenURI).
		Int("members", len(goldMembers)).
		Msg("Gold airdrop metadata pinned")

	recipients := make([]models.RecipientStatus, 0, len(goldMembers))
	for _, member := range goldMembers {
		status := models.AirdropEmailSent
		switch {
		case validation.ValidateEmail(member.Email) != nil:
			status = models.AirdropNoEmail
		case s.mailer == nil:
			status = models.AirdropNoEmail
		default:
			if err := s.mailer.SendAirdrop(ctx, member.Email, member.Address, title, tokenURI); err != nil {
				logger.Warn().
					Err(err).
					Str("address", member.Address).
					Msg("Airdrop mail failed")
				status = models.AirdropEmailFailed
			}
		}
		recipients = append(recipients, models.RecipientStatus{Address: member.Address, Status: status})
	}

	return &models.AirdropResult{
		TokenURI:    tokenURI,
		MemberCount: len(goldMembers),
		Recipients:  recipients,
	}, nil
}

func (s *perksService) GoldAnalytics(ctx context.Context, address string) (*models.GoldAnalytics, error) {
	zeroed := &models.GoldAnalytics{
		PortfolioValue: "0",
		TotalAirdrops:  "0",
		VIPDays:        "0",
		TotalSavings:   "0",
	}

	gold, err := s.members.Get(ctx, address, membershipmodels.TierGold)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return zeroed, nil
		}
		return nil, err
	}

	vipDays := int(time.Since(gold.ClaimedAt).Hours() / 24)
	if vipDays < 0 {
		vipDays = 0
	}

	// Estimated from the Gold threshold; real holdings tracking lives in
	// the chain indexer, not here.
	goldTier, _ := membershipmodels.TierByName(membershipmodels.TierGold)
	portfolioValue := float64(goldTier.MinNFTs) * estimatedNFTPriceETH * ethUSDEstimate

	memberSince := gold.ClaimedAt
	return &models.GoldAnalytics{
		PortfolioValue:     fmt.Sprintf("%.2f", portfolioValue),
		TotalAirdrops:      "0",
		VIPDays:            strconv.Itoa(vipDays),
		TotalSavings:       fmt.Sprintf("%.2f", portfolioValue*goldDiscountRate),
		MemberSince:        &memberSince,
		ExclusiveNFTsOwned: "0",
		VIPEventsAttended:  "0",
	}, nil
}
