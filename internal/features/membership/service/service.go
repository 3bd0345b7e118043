package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"nft-treasury-backend/internal/common/logger"
	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository"
)

var (
	// ErrInvalidSecret is the only ingest failure surfaced to the webhook
	// caller as a non-2xx response.
	ErrInvalidSecret = errors.New("invalid webhook secret")
)

const defaultNotifyTimeout = 10 * time.Second

// Notifier sends the welcome email after an activation. Delivery is
// best-effort; a failed send never rolls back a committed membership.
type Notifier interface {
	SendWelcome(ctx context.Context, record *models.MembershipRecord) error
}

type MembershipService interface {
	// IngestClaim validates a BitBadges claim notification and activates
	// benefits for successful, non-simulated claims. Business rejections
	// (simulation, failed claim, missing address) are normal outcomes, not
	// errors; only a shared-secret mismatch returns ErrInvalidSecret.
	IngestClaim(ctx context.Context, payload *models.ClaimWebhook) (*models.ActivationOutcome, error)
	GetBenefits(ctx context.Context, address, tier string) (*models.BenefitStatus, error)
	GetMembership(ctx context.Context, address string) (*models.MembershipSummary, error)
}

type membershipService struct {
	repo          repository.MembershipRepository
	notifier      Notifier
	sharedSecret  string
	notifyTimeout time.Duration
}

// NewMembershipService wires the ingestor. An empty sharedSecret disables
// webhook authentication; a nil notifier disables welcome emails.
func NewMembershipService(repo repository.MembershipRepository, notifier Notifier, sharedSecret string) MembershipService {
	return &membershipService{
		repo:          repo,
		notifier:      notifier,
		sharedSecret:  sharedSecret,
		notifyTimeout: defaultNotifyTimeout,
	}
}

func (s *membershipService) IngestClaim(ctx context.Context, payload *models.ClaimWebhook) (*models.ActivationOutcome, error) {
	if s.sharedSecret != "" && payload.PluginSecret != s.sharedSecret {
		return nil, ErrInvalidSecret
	}

	if !payload.Successful() {
		reason := models.ReasonNotSuccessful
		if payload.IsSimulation {
			reason = models.ReasonSimulation
		}
		logger.Debug().
			Str("claim_id", payload.ClaimID).
			Str("reason", reason).
			Msg("Skipping claim, no benefits activated")
		return &models.ActivationOutcome{Reason: reason}, nil
	}

	if payload.EthAddress == "" {
		logger.Warn().
			Str("claim_id", payload.ClaimID).
			Msg("Successful claim without an address, no benefits activated")
		return &models.ActivationOutcome{Reason: models.ReasonMissingAddress}, nil
	}

	tier := models.ResolveTierFromHint(payload.BadgeID, payload.CollectionID)

	record := &models.MembershipRecord{
		Address:   models.NormalizeAddress(payload.EthAddress),
		Tier:      tier.Name,
		ClaimID:   payload.ClaimID,
		Email:     payload.ContactEmail(),
		Discord:   payload.ContactDiscord(),
		Benefits:  tier.Benefits.Copy(),
		ClaimedAt: time.Now().UTC(),
	}

	if err := s.repo.Put(ctx, record); err != nil {
		// Per the propagation policy the caller still gets a 200 with a
		// descriptive body; the failure is only visible in logs.
		logger.Error().
			Err(err).
			Str("address", record.Address).
			Str("tier", string(record.Tier)).
			Msg("Failed to store membership record")
		return &models.ActivationOutcome{Reason: "activation failed"}, nil
	}

	logger.Info().
		Str("address", record.Address).
		Str("tier", string(record.Tier)).
		Str("claim_id", record.ClaimID).
		Msg("Membership benefits activated")

	s.notifyAsync(record)

	name := tier.Name
	return &models.ActivationOutcome{TierActivated: &name}, nil
}

// notifyAsync fires the welcome email without tying its outcome to the
// webhook response.
func (s *membershipService) notifyAsync(record *models.MembershipRecord) {
	if s.notifier == nil {
		return
	}

	snapshot := *record
	snapshot.Benefits = record.Benefits.Copy()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		if err := s.notifier.SendWelcome(ctx, &snapshot); err != nil {
			logger.Warn().
				Err(err).
				Str("address", snapshot.Address).
				Str("tier", string(snapshot.Tier)).
				Msg("Welcome notification failed")
		}
	}()
}

func (s *membershipService) GetBenefits(ctx context.Context, address, tier string) (*models.BenefitStatus, error) {
	tierName, ok := models.ParseTierName(tier)
	if !ok {
		// Unknown tier names are absence, not an error.
		return &models.BenefitStatus{Active: false}, nil
	}

	record, err := s.repo.Get(ctx, address, tierName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.BenefitStatus{Active: false}, nil
		}
		return nil, err
	}

	claimedAt := record.ClaimedAt
	return &models.BenefitStatus{
		Active:    true,
		Benefits:  record.Benefits,
		ClaimedAt: &claimedAt,
	}, nil
}

func (s *membershipService) GetMembership(ctx context.Context, address string) (*models.MembershipSummary, error) {
	records, err := s.repo.GetAll(ctx, address)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return &models.MembershipSummary{HasMembership: false}, nil
	}

	tiers := make([]models.TierName, 0, len(records))
	for tier := range records {
		tiers = append(tiers, tier)
	}
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Rank() < tiers[j].Rank()
	})

	return &models.MembershipSummary{
		HasMembership:  true,
		Tiers:          tiers,
		MembershipData: records,
	}, nil
}
