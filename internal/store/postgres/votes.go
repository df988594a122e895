package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cargroup/backend/internal/domain"
)

// CastVote records the vote and increments the offer counter in one
// transaction under the group row lock. Two concurrent votes by the same
// member serialize on that lock, so the second one always sees the first
// vote record and fails with ErrAlreadyVoted. The (group_id, member_id)
// primary key on votes backstops the uniqueness rule.
func (s *Store) CastVote(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := lockGroup(ctx, tx, groupID, "FOR UPDATE"); err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: %w", err)
	}

	var isMember bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM group_members
			WHERE group_id = @group_id AND member_id = @member_id
		)`, pgx.NamedArgs{"group_id": groupID, "member_id": memberID},
	).Scan(&isMember)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: member check: %w", err)
	}
	if !isMember {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: %w", domain.ErrNotAMember)
	}

	// The group_id predicate rejects offers that belong to another group.
	var offerExists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM offers
			WHERE id = @offer_id AND group_id = @group_id
		)`, pgx.NamedArgs{"offer_id": offerID, "group_id": groupID},
	).Scan(&offerExists)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: offer check: %w", err)
	}
	if !offerExists {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: %w", domain.ErrNotFound)
	}

	var hasVoted bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE group_id = @group_id AND member_id = @member_id
		)`, pgx.NamedArgs{"group_id": groupID, "member_id": memberID},
	).Scan(&hasVoted)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: vote check: %w", err)
	}
	if hasVoted {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: %w", domain.ErrAlreadyVoted)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO votes (group_id, member_id, offer_id)
		VALUES (@group_id, @member_id, @offer_id)`,
		pgx.NamedArgs{"group_id": groupID, "member_id": memberID, "offer_id": offerID},
	)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: insert: %w", err)
	}

	const q = `
		UPDATE offers
		SET votes = votes + 1
		WHERE id = @offer_id
		RETURNING id, group_id, dealer_name, price, delivery_time, bonus_items, votes, created_at`

	updated, err := scanOffer(tx.QueryRow(ctx, q, pgx.NamedArgs{"offer_id": offerID}))
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: update: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.CastVote: commit: %w", err)
	}
	return updated, nil
}
