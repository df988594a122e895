package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// MembershipService implements the join flow. The store performs the join as
// a single atomic step, so this layer only validates input and translates
// errors — locking a group when the last slot fills is the store's job.
type MembershipService struct {
	store store.Store
}

// NewMembershipService constructs a MembershipService backed by the provided store.
func NewMembershipService(st store.Store) *MembershipService {
	return &MembershipService{store: st}
}

// Join adds a member to a group, returning the updated group record.
// Returns domain.ErrValidation for a zero member ID, and passes through
// domain.ErrNotFound, domain.ErrAlreadyMember, and domain.ErrGroupFull
// from the store.
func (s *MembershipService) Join(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error) {
	if memberID == uuid.Nil {
		return domain.Group{}, fmt.Errorf("%w: member_id is required", domain.ErrValidation)
	}
	result, err := s.store.AddMember(ctx, groupID, memberID)
	if err != nil {
		return domain.Group{}, fmt.Errorf("service.MembershipService.Join: %w", err)
	}
	return result, nil
}
