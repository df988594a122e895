package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// mockStore is a hand-written test double for store.Store.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockStore struct {
	createGroup      func(ctx context.Context, g domain.Group) (domain.Group, error)
	getGroup         func(ctx context.Context, id uuid.UUID) (domain.Group, error)
	listLockedGroups func(ctx context.Context) ([]domain.Group, error)
	addMember        func(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error)
	addOffer         func(ctx context.Context, o domain.Offer) (domain.Offer, error)
	listOffers       func(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error)
	castVote         func(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error)
	getAnalytics     func(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error)
}

func (m *mockStore) CreateGroup(ctx context.Context, g domain.Group) (domain.Group, error) {
	return m.createGroup(ctx, g)
}
func (m *mockStore) GetGroup(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	return m.getGroup(ctx, id)
}
func (m *mockStore) ListLockedGroups(ctx context.Context) ([]domain.Group, error) {
	return m.listLockedGroups(ctx)
}
func (m *mockStore) AddMember(ctx context.Context, groupID, memberID uuid.UUID) (domain.Group, error) {
	return m.addMember(ctx, groupID, memberID)
}
func (m *mockStore) AddOffer(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	return m.addOffer(ctx, o)
}
func (m *mockStore) ListOffers(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error) {
	return m.listOffers(ctx, groupID)
}
func (m *mockStore) CastVote(ctx context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error) {
	return m.castVote(ctx, groupID, memberID, offerID)
}
func (m *mockStore) GetAnalytics(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error) {
	return m.getAnalytics(ctx, groupID)
}

// compile-time check: mockStore must satisfy store.Store.
var _ store.Store = (*mockStore)(nil)
