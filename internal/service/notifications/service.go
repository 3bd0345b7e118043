package notifications

import (
	"context"
	"fmt"
	"strings"

	"nft-treasury-backend/internal/common/logger"
	"nft-treasury-backend/internal/common/validation"
	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/platform/mail"
)

// Service formats and sends membership emails. All sends are best-effort:
// an unusable recipient address or a missing transport is a silent skip,
// never an activation failure.
type Service struct {
	sender     mail.Sender
	webAppBase string
}

func NewService(sender mail.Sender, webAppBaseURL string) *Service {
	return &Service{sender: sender, webAppBase: strings.TrimRight(webAppBaseURL, "/")}
}

var tierEmojis = map[models.TierName]string{
	models.TierBronze: "🥉",
	models.TierSilver: "🥈",
	models.TierGold:   "🥇",
}

var discordInvites = map[models.TierName]string{
	models.TierSilver: "https://discord.gg/nft-treasury-silver-vip",
	models.TierGold:   "https://discord.gg/nft-treasury-gold-vip",
}

// SendWelcome emails the tier welcome message after a claim activation.
func (s *Service) SendWelcome(_ context.Context, record *models.MembershipRecord) error {
	if s == nil || s.sender == nil {
		return nil
	}
	if validation.ValidateEmail(record.Email) != nil {
		// Contact info is optional or a placeholder in many claims.
		logger.Debug().
			Str("address", record.Address).
			Str("tier", string(record.Tier)).
			Msg("No usable email on record, skipping welcome mail")
		return nil
	}

	tier, _ := models.TierByName(record.Tier)
	subject := fmt.Sprintf("%s Welcome to %s Membership - NFT Treasury!", tierEmojis[record.Tier], record.Tier)
	body := s.buildWelcomeHTML(record, tier)

	if err := s.sender.Send(record.Email, subject, body); err != nil {
		return fmt.Errorf("welcome mail to %s: %w", record.Email, err)
	}

	logger.Info().
		Str("address", record.Address).
		Str("tier", string(record.Tier)).
		Msg("Welcome email sent")
	return nil
}

// SendAirdrop notifies a Gold member about a freshly pinned airdrop NFT.
func (s *Service) SendAirdrop(_ context.Context, email, address, nftTitle, tokenURI string) error {
	if s == nil || s.sender == nil {
		return nil
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("airdrop mail: %w", err)
	}

	subject := fmt.Sprintf("🎁 Gold VIP Airdrop - %s Has Arrived!", nftTitle)
	body := s.buildAirdropHTML(address, nftTitle, tokenURI)

	return s.sender.Send(email, subject, body)
}

// SendEventRSVP confirms a VIP event reservation.
func (s *Service) SendEventRSVP(_ context.Context, email, address, eventTitle string, eventID int) error {
	if s == nil || s.sender == nil {
		return nil
	}
	if validation.ValidateEmail(email) != nil {
		return nil
	}

	subject := fmt.Sprintf("🎫 VIP Event RSVP Confirmed - %s", eventTitle)
	body := s.buildRSVPHTML(address, eventTitle, eventID)

	return s.sender.Send(email, subject, body)
}

// SendDiscordInvite mails a tier-specific Discord invite link.
func (s *Service) SendDiscordInvite(_ context.Context, email, address string, tier models.TierName) error {
	if s == nil || s.sender == nil {
		return nil
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("discord invite mail: %w", err)
	}

	invite, ok := discordInvites[tier]
	if !ok {
		return fmt.Errorf("no discord community for tier %s", tier)
	}

	subject := fmt.Sprintf("🎮 %s Discord Invite - NFT Treasury VIP Community", tier)
	body := s.buildDiscordInviteHTML(address, tier, invite)

	return s.sender.Send(email, subject, body)
}

func (s *Service) dashboardURL() string {
	if s.webAppBase == "" {
		return "http://localhost:5173"
	}
	return s.webAppBase
}

func (s *Service) buildWelcomeHTML(record *models.MembershipRecord, tier models.Tier) string {
	var benefits strings.Builder
	for name, value := range record.Benefits {
		benefits.WriteString(fmt.Sprintf("<p>• %s: %v</p>", name, value))
	}

	return fmt.Sprintf(`
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;">
  <div style="background:%s;padding:2rem;text-align:center;">
    <h1 style="margin:0;">%s Welcome to %s Membership!</h1>
    <p>NFT Treasury %s Benefits Activated</p>
  </div>
  <div style="padding:2rem;">
    <p>Your %s membership has been activated via our BitBadges webhook system.</p>
    <h3>Account</h3>
    <p><strong>Wallet:</strong> %s</p>
    <p><strong>Membership Tier:</strong> %s</p>
    <h3>Your %s Benefits</h3>
    %s
    <p style="text-align:center;"><a href="%s">Access Your %s Dashboard</a></p>
  </div>
</div>`,
		tier.Color, tierEmojis[record.Tier], record.Tier, record.Tier,
		record.Tier, record.Address, record.Tier, record.Tier,
		benefits.String(), s.dashboardURL(), record.Tier)
}

func (s *Service) buildAirdropHTML(address, nftTitle, tokenURI string) string {
	return fmt.Sprintf(`
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;">
  <div style="background:#FFD700;padding:2rem;text-align:center;">
    <h1 style="margin:0;">🎁 Gold VIP Airdrop!</h1>
    <p>Exclusive NFT Delivered</p>
  </div>
  <div style="padding:2rem;">
    <p>As a Gold VIP member, you've received an exclusive airdrop NFT.</p>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Wallet:</strong> %s</p>
    <p><strong>Token URI:</strong> %s</p>
    <p style="text-align:center;"><a href="%s">View Your Gold Dashboard</a></p>
  </div>
</div>`, nftTitle, address, tokenURI, s.dashboardURL())
}

func (s *Service) buildRSVPHTML(address, eventTitle string, eventID int) string {
	return fmt.Sprintf(`
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;">
  <div style="background:#FFD700;padding:2rem;text-align:center;">
    <h1 style="margin:0;">🎫 RSVP Confirmed!</h1>
    <p>Gold VIP Event Access</p>
  </div>
  <div style="padding:2rem;">
    <p><strong>Event:</strong> %s</p>
    <p><strong>Event ID:</strong> #%d</p>
    <p><strong>Wallet:</strong> %s</p>
    <p>You'll receive event details 24 hours before the start.</p>
    <p style="text-align:center;"><a href="%s">View More VIP Events</a></p>
  </div>
</div>`, eventTitle, eventID, address, s.dashboardURL())
}

func (s *Service) buildDiscordInviteHTML(address string, tier models.TierName, invite string) string {
	return fmt.Sprintf(`
<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;">
  <div style="background:#7289DA;padding:2rem;text-align:center;">
    <h1 style="margin:0;">🎮 Discord Invite</h1>
    <p>%s VIP Community Access</p>
  </div>
  <div style="padding:2rem;">
    <p><strong>Tier:</strong> %s VIP Member</p>
    <p><strong>Wallet:</strong> %s</p>
    <p><strong>Invite Link:</strong> <a href="%s">%s</a></p>
    <p>This invite is exclusive to verified %s members. Keep the link private.</p>
  </div>
</div>`, tier, tier, address, invite, invite, tier)
}
