package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cargroup/backend/internal/domain"
)

// AddOffer inserts an offer for a capacity-reached group and, when this is
// the first offer, flips the group locked → negotiation. The FOR UPDATE
// lock on the group row makes the status check and the transition
// linearizable with respect to concurrent joins and votes.
func (s *Store) AddOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.AddOffer: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	g, err := lockGroup(ctx, tx, o.GroupID, "FOR UPDATE")
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.AddOffer: %w", err)
	}
	if !g.Status.AcceptsOffers() {
		return domain.Offer{}, fmt.Errorf("store.Postgres.AddOffer: %w", domain.ErrGroupNotLocked)
	}

	const q = `
		INSERT INTO offers (group_id, dealer_name, price, delivery_time, bonus_items)
		VALUES (@group_id, @dealer_name, @price, @delivery_time, @bonus_items)
		RETURNING id, group_id, dealer_name, price, delivery_time, bonus_items, votes, created_at`

	args := pgx.NamedArgs{
		"group_id":      o.GroupID,
		"dealer_name":   o.DealerName,
		"price":         o.Price,
		"delivery_time": o.DeliveryTime,
		"bonus_items":   o.BonusItems,
	}

	created, err := scanOffer(tx.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.AddOffer: insert: %w", err)
	}

	if g.Status == domain.StatusLocked {
		_, err = tx.Exec(ctx,
			`UPDATE groups SET status = 'negotiation' WHERE id = @id`,
			pgx.NamedArgs{"id": o.GroupID},
		)
		if err != nil {
			return domain.Offer{}, fmt.Errorf("store.Postgres.AddOffer: transition: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Offer{}, fmt.Errorf("store.Postgres.AddOffer: commit: %w", err)
	}
	return created, nil
}

// ListOffers returns a group's offers ordered by creation time ascending.
// The group lookup runs first so an unknown group yields ErrNotFound
// rather than an empty list.
func (s *Store) ListOffers(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, fmt.Errorf("store.Postgres.ListOffers: %w", err)
	}

	const q = `
		SELECT id, group_id, dealer_name, price, delivery_time, bonus_items, votes, created_at
		FROM offers
		WHERE group_id = @group_id
		ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, q, pgx.NamedArgs{"group_id": groupID})
	if err != nil {
		return nil, fmt.Errorf("store.Postgres.ListOffers: %w", err)
	}
	defer rows.Close()

	offers := []domain.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("store.Postgres.ListOffers: scan: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.Postgres.ListOffers: rows: %w", err)
	}
	return offers, nil
}
