package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository"

	"github.com/redis/go-redis/v9"
)

type membershipRepository struct {
	client *redis.Client
}

func NewMembershipRepository(client *redis.Client) repository.MembershipRepository {
	return &membershipRepository{
		client: client,
	}
}

// memberKey builds the storage key. Addresses are hex strings, so the
// colon-separated layout is unambiguous.
func memberKey(address string, tier models.TierName) string {
	return fmt.Sprintf("member:%s:%s", models.NormalizeAddress(address), tier)
}

func (r *membershipRepository) Put(ctx context.Context, record *models.MembershipRecord) error {
	stored := *record
	stored.Address = models.NormalizeAddress(record.Address)

	recordJSON, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	// A single SET keeps the overwrite atomic for concurrent deliveries.
	return r.client.Set(ctx, memberKey(stored.Address, stored.Tier), recordJSON, 0).Err()
}

func (r *membershipRepository) Get(ctx context.Context, address string, tier models.TierName) (*models.MembershipRecord, error) {
	recordJSON, err := r.client.Get(ctx, memberKey(address, tier)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var record models.MembershipRecord
	if err := json.Unmarshal(recordJSON, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *membershipRepository) GetAll(ctx context.Context, address string) (map[models.TierName]*models.MembershipRecord, error) {
	pattern := fmt.Sprintf("member:%s:*", models.NormalizeAddress(address))

	out := make(map[models.TierName]*models.MembershipRecord)
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		record, err := r.getByKey(ctx, iter.Val())
		if err != nil {
			continue
		}
		out[record.Tier] = record
	}

	return out, iter.Err()
}

func (r *membershipRepository) ListByTier(ctx context.Context, tier models.TierName) ([]*models.MembershipRecord, error) {
	pattern := fmt.Sprintf("member:*:%s", tier)

	var out []*models.MembershipRecord
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		record, err := r.getByKey(ctx, iter.Val())
		if err != nil {
			continue
		}
		out = append(out, record)
	}

	return out, iter.Err()
}

func (r *membershipRepository) getByKey(ctx context.Context, key string) (*models.MembershipRecord, error) {
	recordJSON, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var record models.MembershipRecord
	if err := json.Unmarshal(recordJSON, &record); err != nil {
		return nil, err
	}

	return &record, nil
}
