// Package postgres implements store.Store on PostgreSQL via pgx v5.
//
// Per-group serialization is done at the database: every mutating method
// runs in one transaction that takes a row lock on the group
// (SELECT ... FOR UPDATE), so all mutations of a group serialize against
// each other while unrelated groups proceed in parallel. Analytics reads
// take a shared lock on the same row, making them write-blocking but
// guaranteed torn-state-free.
package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
// Begin on a pgx.Tx opens a savepoint, so nesting works transparently.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner abstracts pgx.Row and pgx.Rows for the shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// Store is the Postgres implementation of store.Store.
type Store struct {
	db db
}

// compile-time check
var _ store.Store = (*Store)(nil)

// New constructs a Store backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func New(db db) *Store {
	return &Store{db: db}
}

// scanGroup maps a single database row into a domain.Group.
func scanGroup(s scanner) (domain.Group, error) {
	var (
		g      domain.Group
		id     pgtype.UUID
		status string
	)
	err := s.Scan(&id, &g.CarModel, &g.Brand, &g.City, &g.MaxMembers, &g.CurrentMembers, &status, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Group{}, domain.ErrNotFound
		}
		return domain.Group{}, err
	}
	g.ID = uuid.UUID(id.Bytes)
	g.Status = domain.GroupStatus(status)
	return g, nil
}

// scanOffer maps a single database row into a domain.Offer.
func scanOffer(s scanner) (domain.Offer, error) {
	var (
		o       domain.Offer
		id      pgtype.UUID
		groupID pgtype.UUID
	)
	err := s.Scan(&id, &groupID, &o.DealerName, &o.Price, &o.DeliveryTime, &o.BonusItems, &o.Votes, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Offer{}, domain.ErrNotFound
		}
		return domain.Offer{}, err
	}
	o.ID = uuid.UUID(id.Bytes)
	o.GroupID = uuid.UUID(groupID.Bytes)
	return o, nil
}

// lockGroup loads the group row inside tx, taking the lock named by clause
// ("FOR UPDATE" for mutations, "FOR SHARE" for analytics reads).
func lockGroup(ctx context.Context, tx pgx.Tx, groupID uuid.UUID, clause string) (domain.Group, error) {
	q := `
		SELECT id, car_model, brand, city, max_members, current_members, status, created_at
		FROM groups
		WHERE id = @id ` + clause

	return scanGroup(tx.QueryRow(ctx, q, pgx.NamedArgs{"id": groupID}))
}
