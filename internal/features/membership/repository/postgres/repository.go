package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"nft-treasury-backend/internal/features/membership/models"
	"nft-treasury-backend/internal/features/membership/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS memberships (
	address          TEXT        NOT NULL,
	tier             TEXT        NOT NULL,
	claim_id         TEXT        NOT NULL DEFAULT '',
	email            TEXT        NOT NULL DEFAULT '',
	discord_username TEXT        NOT NULL DEFAULT '',
	discord_id       TEXT        NOT NULL DEFAULT '',
	benefits         JSONB       NOT NULL DEFAULT '{}',
	claimed_at       TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (address, tier)
)`

type membershipRepository struct {
	db *sql.DB
}

func NewMembershipRepository(db *sql.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// Migrate creates the memberships table when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create memberships table: %w", err)
	}
	return nil
}

func (r *membershipRepository) Put(ctx context.Context, record *models.MembershipRecord) error {
	benefitsJSON, err := json.Marshal(record.Benefits)
	if err != nil {
		return err
	}

	// The upsert makes the last-write-wins overwrite a single atomic
	// statement for racing deliveries.
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO memberships (address, tier, claim_id, email, discord_username, discord_id, benefits, claimed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (address, tier) DO UPDATE SET
			claim_id = EXCLUDED.claim_id,
			email = EXCLUDED.email,
			discord_username = EXCLUDED.discord_username,
			discord_id = EXCLUDED.discord_id,
			benefits = EXCLUDED.benefits,
			claimed_at = EXCLUDED.claimed_at`,
		models.NormalizeAddress(record.Address), string(record.Tier), record.ClaimID,
		record.Email, record.Discord.Username, record.Discord.ID,
		benefitsJSON, record.ClaimedAt,
	)
	return err
}

func (r *membershipRepository) Get(ctx context.Context, address string, tier models.TierName) (*models.MembershipRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT address, tier, claim_id, email, discord_username, discord_id, benefits, claimed_at
		FROM memberships
		WHERE address = $1 AND tier = $2`,
		models.NormalizeAddress(address), string(tier),
	)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return record, nil
}

func (r *membershipRepository) GetAll(ctx context.Context, address string) (map[models.TierName]*models.MembershipRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT address, tier, claim_id, email, discord_username, discord_id, benefits, claimed_at
		FROM memberships
		WHERE address = $1`,
		models.NormalizeAddress(address),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[models.TierName]*models.MembershipRecord)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out[record.Tier] = record
	}
	return out, rows.Err()
}

func (r *membershipRepository) ListByTier(ctx context.Context, tier models.TierName) ([]*models.MembershipRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT address, tier, claim_id, email, discord_username, discord_id, benefits, claimed_at
		FROM memberships
		WHERE tier = $1
		ORDER BY claimed_at`,
		string(tier),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.MembershipRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*models.MembershipRecord, error) {
	var (
		record       models.MembershipRecord
		tier         string
		benefitsJSON []byte
	)
	if err := row.Scan(&record.Address, &tier, &record.ClaimID, &record.Email,
		&record.Discord.Username, &record.Discord.ID, &benefitsJSON, &record.ClaimedAt); err != nil {
		return nil, err
	}

	record.Tier = models.TierName(tier)
	if err := json.Unmarshal(benefitsJSON, &record.Benefits); err != nil {
		return nil, err
	}
	return &record, nil
}
