package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cargroup/backend/internal/domain"
)

// GetAnalytics reads the projection inside one transaction holding a shared
// lock on the group row. Writers hold FOR UPDATE on the same row, so the
// read blocks until in-flight mutations commit and can never observe a
// half-applied join or vote. Analytics is not latency-critical, so a
// write-blocking read is acceptable.
func (s *Store) GetAnalytics(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	g, err := lockGroup(ctx, tx, groupID, "FOR SHARE")
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: %w", err)
	}

	var membersCount int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM group_members WHERE group_id = @group_id`,
		pgx.NamedArgs{"group_id": groupID},
	).Scan(&membersCount)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: members: %w", err)
	}
	if membersCount != g.CurrentMembers {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: %w", domain.ErrInconsistent)
	}

	const offersQ = `
		SELECT id, group_id, dealer_name, price, delivery_time, bonus_items, votes, created_at
		FROM offers
		WHERE group_id = @group_id
		ORDER BY created_at, id`

	rows, err := tx.Query(ctx, offersQ, pgx.NamedArgs{"group_id": groupID})
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: offers: %w", err)
	}
	defer rows.Close()

	offers := []domain.Offer{}
	sumVotes := 0
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: scan: %w", err)
		}
		offers = append(offers, o)
		sumVotes += o.Votes
	}
	if err := rows.Err(); err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: rows: %w", err)
	}

	var voteRecords int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM votes WHERE group_id = @group_id`,
		pgx.NamedArgs{"group_id": groupID},
	).Scan(&voteRecords)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: votes: %w", err)
	}
	if voteRecords != sumVotes {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: %w", domain.ErrInconsistent)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Analytics{}, fmt.Errorf("store.Postgres.GetAnalytics: commit: %w", err)
	}

	return domain.Analytics{
		Group:        g,
		MembersCount: membersCount,
		TotalVotes:   sumVotes,
		Offers:       offers,
	}, nil
}
