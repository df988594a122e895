package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cargroup/backend/internal/domain"
)

// CreateGroup inserts a new group row and returns the full persisted record.
// Status and counter defaults come from the schema, so a caller-supplied
// status can never leak into a fresh group.
func (s *Store) CreateGroup(ctx context.Context, g domain.Group) (domain.Group, error) {
	const q = `
		INSERT INTO groups (car_model, brand, city, max_members)
		VALUES (@car_model, @brand, @city, @max_members)
		RETURNING id, car_model, brand, city, max_members, current_members, status, created_at`

	args := pgx.NamedArgs{
		"car_model":   g.CarModel,
		"brand":       g.Brand,
		"city":        g.City,
		"max_members": g.MaxMembers,
	}

	result, err := scanGroup(s.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.CreateGroup: %w", err)
	}
	return result, nil
}

// GetGroup retrieves a single group by its UUID primary key.
func (s *Store) GetGroup(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	const q = `
		SELECT id, car_model, brand, city, max_members, current_members, status, created_at
		FROM groups
		WHERE id = @id`

	result, err := scanGroup(s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Group{}, fmt.Errorf("store.Postgres.GetGroup: %w", err)
	}
	return result, nil
}

// ListLockedGroups returns locked and negotiating groups ordered by creation
// time. The id tiebreak keeps the ordering stable when timestamps collide.
func (s *Store) ListLockedGroups(ctx context.Context) ([]domain.Group, error) {
	const q = `
		SELECT id, car_model, brand, city, max_members, current_members, status, created_at
		FROM groups
		WHERE status IN ('locked', 'negotiation')
		ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store.Postgres.ListLockedGroups: %w", err)
	}
	defer rows.Close()

	groups := []domain.Group{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("store.Postgres.ListLockedGroups: scan: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.Postgres.ListLockedGroups: rows: %w", err)
	}
	return groups, nil
}
