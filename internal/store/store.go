// Package store defines the persistence contract for the group lifecycle
// engine. Two implementations exist: store/postgres (pgx, production) and
// store/memory (mutex-per-group, dev mode and tests).
//
// Every mutating method is a single atomic step with respect to its group:
// implementations serialize all mutations of one group against each other
// (row lock or per-group mutex) while leaving unrelated groups fully
// parallel. A method that returns an error must leave no partial mutation.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
)

// Store is the persistence interface the service layer depends on.
// The service layer depends on this interface, not a concrete
// implementation, which allows it to be unit-tested with a mock.
type Store interface {
	// CreateGroup persists a new group with status=open and
	// current_members=0, returning the stored record with ID and
	// CreatedAt populated.
	CreateGroup(ctx context.Context, g domain.Group) (domain.Group, error)

	// GetGroup retrieves a single group by ID.
	// Returns domain.ErrNotFound if no group with that ID exists.
	GetGroup(ctx context.Context, id uuid.UUID) (domain.Group, error)

	// ListLockedGroups returns all groups with status locked or
	// negotiation, ordered by creation time ascending (stable).
	ListLockedGroups(ctx context.Context) ([]domain.Group, error)

	// AddMember atomically inserts a join record and increments
	// current_members; when the increment fills the last slot the group
	// transitions open → locked in the same step. Returns the updated
	// group.
	// Returns domain.ErrNotFound, domain.ErrAlreadyMember, or
	// domain.ErrGroupFull.
	AddMember(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error)

	// AddOffer inserts an offer with votes=0 for a locked or negotiating
	// group; the first offer transitions the group locked → negotiation.
	// Returns domain.ErrNotFound or domain.ErrGroupNotLocked.
	AddOffer(ctx context.Context, o domain.Offer) (domain.Offer, error)

	// ListOffers returns all offers of a group ordered by creation time
	// ascending. Returns domain.ErrNotFound if the group does not exist.
	ListOffers(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error)

	// CastVote atomically records a vote and increments the offer's vote
	// counter by exactly one, returning the updated offer.
	// Returns domain.ErrNotFound (group or offer absent, or offer not
	// belonging to the group), domain.ErrNotAMember, or
	// domain.ErrAlreadyVoted.
	CastVote(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error)

	// GetAnalytics reads a consistent snapshot of a group's membership
	// and offer data. Returns domain.ErrNotFound if the group is absent
	// and domain.ErrInconsistent if the vote ledger and offer counters
	// disagree.
	GetAnalytics(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error)
}
