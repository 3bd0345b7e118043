package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	membershipmodels "nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository"
	"nft-treasury-backend/internal/features/membership/repository/memory"
	"nft-treasury-backend/internal/features/perks/models"
	"nft-treasury-backend/internal/platform/pinata"
)

type fakePinner struct {
	pinned []interface{}
	pinErr error
}

func (f *fakePinner) PinJSON(_ context.Context, content interface{}) (*pinata.PinResult, error) {
	if f.pinErr != nil {
		return nil, f.pinErr
	}
	f.pinned = append(f.pinned, content)
	return &pinata.PinResult{IpfsHash: "QmFakeHash"}, nil
}

func (f *fakePinner) GatewayURL(ipfsHash string) string {
	return "https://gateway.pinata.cloud/ipfs/" + ipfsHash
}

type sentMail struct {
	kind    string
	email   string
	address string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]error
}

func (f *fakeMailer) record(kind, email, address string) error {
	if err, ok := f.failFor[email]; ok {
		return err
	}
	f.sent = append(f.sent, sentMail{kind: kind, email: email, address: address})
	return nil
}

func (f *fakeMailer) SendAirdrop(_ context.Context, email, address, _, _ string) error {
	return f.record("airdrop", email, address)
}

func (f *fakeMailer) SendEventRSVP(_ context.Context, email, address, _ string, _ int) error {
	return f.record("rsvp", email, address)
}

func (f *fakeMailer) SendDiscordInvite(_ context.Context, email, address string, _ membershipmodels.TierName) error {
	return f.record("discord", email, address)
}

func seedMember(t *testing.T, repo repository.MembershipRepository, address string, tier membershipmodels.TierName, email string) {
	t.Helper()
	require.NoError(t, repo.Put(context.Background(), &membershipmodels.MembershipRecord{
		Address:   address,
		Tier:      tier,
		Email:     email,
		Benefits:  membershipmodels.BenefitSet{"vipAccess": true},
		ClaimedAt: time.Now().UTC().Add(-72 * time.Hour),
	}))
}

func TestListVIPEventsReturnsCopy(t *testing.T) {
	svc := NewPerksService(memory.NewMembershipRepository(), &fakePinner{}, nil)

	events := svc.ListVIPEvents(context.Background())
	require.NotEmpty(t, events)

	events[0].Title = "mutated"
	again := svc.ListVIPEvents(context.Background())
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestRSVPRequiresGold(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xsilver", membershipmodels.TierSilver, "silver@example.com")
	svc := NewPerksService(repo, &fakePinner{}, &fakeMailer{})

	_, err := svc.RSVP(context.Background(), 1, "0xsilver")
	assert.ErrorIs(t, err, ErrGoldRequired)

	_, err = svc.RSVP(context.Background(), 1, "0xnobody")
	assert.ErrorIs(t, err, ErrGoldRequired)
}

func TestRSVPUnknownEvent(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xgold", membershipmodels.TierGold, "gold@example.com")
	svc := NewPerksService(repo, &fakePinner{}, &fakeMailer{})

	_, err := svc.RSVP(context.Background(), 999, "0xgold")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestRSVPConfirmsAndMails(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xGOLD", membershipmodels.TierGold, "gold@example.com")
	mailer := &fakeMailer{}
	svc := NewPerksService(repo, &fakePinner{}, mailer)

	event, err := svc.RSVP(context.Background(), 1, "0xgold")
	require.NoError(t, err)
	assert.Equal(t, 1, event.ID)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "rsvp", mailer.sent[0].kind)
	assert.Equal(t, "gold@example.com", mailer.sent[0].email)
}

func TestRSVPMailFailureIsBestEffort(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xgold", membershipmodels.TierGold, "gold@example.com")
	mailer := &fakeMailer{failFor: map[string]error{"gold@example.com": errors.New("smtp down")}}
	svc := NewPerksService(repo, &fakePinner{}, mailer)

	event, err := svc.RSVP(context.Background(), 1, "0xgold")
	require.NoError(t, err, "mail failure must not fail the RSVP")
	assert.NotNil(t, event)
}

func TestDiscordInviteTierGating(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xsilver", membershipmodels.TierSilver, "silver@example.com")
	seedMember(t, repo, "0xgold", membershipmodels.TierGold, "gold@example.com")
	mailer := &fakeMailer{}
	svc := NewPerksService(repo, &fakePinner{}, mailer)
	ctx := context.Background()

	// Bronze has no private community.
	_, err := svc.SendDiscordInvite(ctx, "0xgold", "Bronze")
	assert.ErrorIs(t, err, ErrMembershipRequired)

	_, err = svc.SendDiscordInvite(ctx, "0xgold", "Platinum")
	assert.ErrorIs(t, err, ErrMembershipRequired)

	// A Silver member cannot request the Gold community.
	_, err = svc.SendDiscordInvite(ctx, "0xsilver", "Gold")
	assert.ErrorIs(t, err, ErrMembershipRequired)

	// A Gold member qualifies for Silver and Gold.
	email, err := svc.SendDiscordInvite(ctx, "0xgold", "Silver")
	require.NoError(t, err)
	assert.Equal(t, "gold@example.com", email)

	email, err = svc.SendDiscordInvite(ctx, "0xGOLD", "Gold")
	require.NoError(t, err)
	assert.Equal(t, "gold@example.com", email)

	require.Len(t, mailer.sent, 2)
	assert.Equal(t, "discord", mailer.sent[0].kind)
}

func TestDiscordInviteRequiresEmail(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xgold", membershipmodels.TierGold, "")
	svc := NewPerksService(repo, &fakePinner{}, &fakeMailer{})

	_, err := svc.SendDiscordInvite(context.Background(), "0xgold", "Gold")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestGoldAirdropNoMembers(t *testing.T) {
	pinner := &fakePinner{}
	svc := NewPerksService(memory.NewMembershipRepository(), pinner, &fakeMailer{})

	result, err := svc.RunGoldAirdrop(context.Background(), "", "")
	require.NoError(t, err)
	assert.Zero(t, result.MemberCount)
	assert.Empty(t, result.Recipients)
	assert.Empty(t, pinner.pinned, "nothing to pin when nobody qualifies")
}

func TestGoldAirdropRecipientStatuses(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xaaa", membershipmodels.TierGold, "a@example.com")
	seedMember(t, repo, "0xbbb", membershipmodels.TierGold, "")
	seedMember(t, repo, "0xccc", membershipmodels.TierGold, "c@example.com")
	seedMember(t, repo, "0xddd", membershipmodels.TierSilver, "d@example.com")

	pinner := &fakePinner{}
	mailer := &fakeMailer{failFor: map[string]error{"c@example.com": errors.New("smtp down")}}
	svc := NewPerksService(repo, pinner, mailer)

	result, err := svc.RunGoldAirdrop(context.Background(), "Spring Drop", "")
	require.NoError(t, err)

	assert.Equal(t, 3, result.MemberCount, "only Gold members receive airdrops")
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmFakeHash", result.TokenURI)
	require.Len(t, pinner.pinned, 1)

	byAddress := make(map[string]models.RecipientStatus)
	for _, r := range result.Recipients {
		byAddress[r.Address] = r
	}
	assert.Equal(t, models.AirdropEmailSent, byAddress["0xaaa"].Status)
	assert.Equal(t, models.AirdropNoEmail, byAddress["0xbbb"].Status)
	assert.Equal(t, models.AirdropEmailFailed, byAddress["0xccc"].Status)
	assert.NotContains(t, byAddress, "0xddd")
}

func TestGoldAirdropPinFailure(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xaaa", membershipmodels.TierGold, "a@example.com")
	pinner := &fakePinner{pinErr: errors.New("pinata 500")}
	svc := NewPerksService(repo, pinner, &fakeMailer{})

	_, err := svc.RunGoldAirdrop(context.Background(), "", "")
	assert.Error(t, err)
}

func TestGoldAnalyticsZeroedWithoutGold(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xsilver", membershipmodels.TierSilver, "silver@example.com")
	svc := NewPerksService(repo, &fakePinner{}, nil)

	analytics, err := svc.GoldAnalytics(context.Background(), "0xsilver")
	require.NoError(t, err)
	assert.Equal(t, "0", analytics.PortfolioValue)
	assert.Equal(t, "0", analytics.VIPDays)
	assert.Nil(t, analytics.MemberSince)
}

func TestGoldAnalyticsForGoldMember(t *testing.T) {
	repo := memory.NewMembershipRepository()
	seedMember(t, repo, "0xgold", membershipmodels.TierGold, "gold@example.com")
	svc := NewPerksService(repo, &fakePinner{}, nil)

	analytics, err := svc.GoldAnalytics(context.Background(), "0xGOLD")
	require.NoError(t, err)
	assert.Equal(t, "100.00", analytics.PortfolioValue)
	assert.Equal(t, "30.00", analytics.TotalSavings)
	assert.Equal(t, "3", analytics.VIPDays)
	require.NotNil(t, analytics.MemberSince)
}
