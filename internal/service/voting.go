package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// VoteService implements vote casting. One vote per member per group,
// immutable once cast — there is no retraction or switching operation.
type VoteService struct {
	store store.Store
}

// NewVoteService constructs a VoteService backed by the provided store.
func NewVoteService(st store.Store) *VoteService {
	return &VoteService{store: st}
}

// Cast records a member's vote for an offer and returns the updated offer.
// Returns domain.ErrValidation for zero IDs, and passes through
// domain.ErrNotFound, domain.ErrNotAMember, and domain.ErrAlreadyVoted
// from the store.
func (s *VoteService) Cast(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error) {
	if memberID == uuid.Nil {
		return domain.Offer{}, fmt.Errorf("%w: member_id is required", domain.ErrValidation)
	}
	if offerID == uuid.Nil {
		return domain.Offer{}, fmt.Errorf("%w: offer_id is required", domain.ErrValidation)
	}
	result, err := s.store.CastVote(ctx, groupID, memberID, offerID)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("service.VoteService.Cast: %w", err)
	}
	return result, nil
}
