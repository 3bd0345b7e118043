package repository

import (
	"context"
	"errors"

	"nft-treasury-backend/internal/features/membership/models"
)

// ErrNotFound is returned when no record exists for an (address, tier) pair.
var ErrNotFound = errors.New("membership not found")

// MembershipRepository stores activated memberships keyed by
// (lower-cased address, tier). Put overwrites an existing record for the
// same pair; implementations must make the overwrite atomic so retried
// webhook deliveries stay idempotent.
type MembershipRepository interface {
	Put(ctx context.Context, record *models.MembershipRecord) error
	Get(ctx context.Context, address string, tier models.TierName) (*models.MembershipRecord, error)
	GetAll(ctx context.Context, address string) (map[models.TierName]*models.MembershipRecord, error)
	ListByTier(ctx context.Context, tier models.TierName) ([]*models.MembershipRecord, error)
}
