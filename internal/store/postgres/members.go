package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cargroup/backend/internal/domain"
)

// AddMember runs the whole join as one transaction: the FOR UPDATE lock on
// the group row serializes it against every other mutation of the same
// group, so the capacity check, the join record insert, the counter
// increment, and the open → locked transition commit or fail together.
// The (group_id, member_id) primary key backstops the duplicate check.
func (s *Store) AddMember(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	g, err := lockGroup(ctx, tx, groupID, "FOR UPDATE")
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: %w", err)
	}

	var isMember bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM group_members
			WHERE group_id = @group_id AND member_id = @member_id
		)`, pgx.NamedArgs{"group_id": groupID, "member_id": memberID},
	).Scan(&isMember)
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: member check: %w", err)
	}
	if isMember {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: %w", domain.ErrAlreadyMember)
	}

	if g.CurrentMembers >= g.MaxMembers {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: %w", domain.ErrGroupFull)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO group_members (group_id, member_id)
		VALUES (@group_id, @member_id)`,
		pgx.NamedArgs{"group_id": groupID, "member_id": memberID},
	)
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: insert: %w", err)
	}

	// The CASE keeps the transition inside the same UPDATE: filling the
	// last slot flips open → locked, any other increment leaves status
	// untouched.
	const q = `
		UPDATE groups
		SET current_members = current_members + 1,
		    status = CASE
		        WHEN current_members + 1 = max_members AND status = 'open' THEN 'locked'
		        ELSE status
		    END
		WHERE id = @id
		RETURNING id, car_model, brand, city, max_members, current_members, status, created_at`

	updated, err := scanGroup(tx.QueryRow(ctx, q, pgx.NamedArgs{"id": groupID}))
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: update: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.AddMember: commit: %w", err)
	}
	return updated, nil
}
