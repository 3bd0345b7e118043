package memory

import (
	"context"
	"sync"

	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository"
)

// membershipRepository is the default in-memory store. State does not
// survive a restart and is not shared across instances.
type membershipRepository struct {
	mu      sync.RWMutex
	members map[string]map[models.TierName]*models.MembershipRecord
}

func NewMembershipRepository() repository.MembershipRepository {
	return &membershipRepository{
		members: make(map[string]map[models.TierName]*models.MembershipRecord),
	}
}

func (r *membershipRepository) Put(_ context.Context, record *models.MembershipRecord) error {
	address := models.NormalizeAddress(record.Address)

	stored := *record
	stored.Address = address
	stored.Benefits = record.Benefits.Copy()

	r.mu.Lock()
	defer r.mu.Unlock()

	byTier, ok := r.members[address]
	if !ok {
		byTier = make(map[models.TierName]*models.MembershipRecord)
		r.members[address] = byTier
	}
	byTier[record.Tier] = &stored

	return nil
}

func (r *membershipRepository) Get(_ context.Context, address string, tier models.TierName) (*models.MembershipRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.members[models.NormalizeAddress(address)][tier]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyRecord(record), nil
}

func (r *membershipRepository) GetAll(_ context.Context, address string) (map[models.TierName]*models.MembershipRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[models.TierName]*models.MembershipRecord)
	for tier, record := range r.members[models.NormalizeAddress(address)] {
		out[tier] = copyRecord(record)
	}
	return out, nil
}

func (r *membershipRepository) ListByTier(_ context.Context, tier models.TierName) ([]*models.MembershipRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.MembershipRecord
	for _, byTier := range r.members {
		if record, ok := byTier[tier]; ok {
			out = append(out, copyRecord(record))
		}
	}
	return out, nil
}

// copyRecord snapshots a record so callers never alias store-internal state.
func copyRecord(record *models.MembershipRecord) *models.MembershipRecord {
	out := *record
	out.Benefits = record.Benefits.Copy()
	return &out
}
