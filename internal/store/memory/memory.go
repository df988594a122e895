// Package memory implements store.Store entirely in process memory.
// It backs the server when no DATABASE_URL is configured and the
// concurrency tests, which need the full engine semantics without an
// external database.
//
// Concurrency model: one mutex per group. Mutations of a single group are
// serialized against each other (and against analytics reads), while two
// groups are mutated fully in parallel. The outer RWMutex only guards the
// group index, never a group's contents.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// groupState bundles everything owned by a single group behind one mutex.
type groupState struct {
	mu      sync.Mutex
	group   domain.Group
	members map[uuid.UUID]domain.Membership
	offers  []domain.Offer
	votes   map[uuid.UUID]domain.Vote // keyed by member ID
}

// Store is the in-memory implementation of store.Store.
type Store struct {
	mu     sync.RWMutex
	groups map[uuid.UUID]*groupState
	order  []uuid.UUID // creation order, for stable listings
}

// compile-time check
var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{groups: make(map[uuid.UUID]*groupState)}
}

// CreateGroup stores a new open group and returns it with ID and CreatedAt set.
func (s *Store) CreateGroup(_ context.Context, g domain.Group) (domain.Group, error) {
	g.ID = uuid.New()
	g.CurrentMembers = 0
	g.Status = domain.StatusOpen
	g.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID] = &groupState{
		group:   g,
		members: make(map[uuid.UUID]domain.Membership),
		votes:   make(map[uuid.UUID]domain.Vote),
	}
	s.order = append(s.order, g.ID)
	return g, nil
}

// GetGroup returns a copy of the group record.
func (s *Store) GetGroup(_ context.Context, id uuid.UUID) (domain.Group, error) {
	st, err := s.state(id)
	if err != nil {
		return domain.Group{}, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.group, nil
}

// ListLockedGroups returns locked and negotiating groups in creation order.
func (s *Store) ListLockedGroups(_ context.Context) ([]domain.Group, error) {
	s.mu.RLock()
	states := make([]*groupState, 0, len(s.order))
	for _, id := range s.order {
		states = append(states, s.groups[id])
	}
	s.mu.RUnlock()

	groups := []domain.Group{}
	for _, st := range states {
		st.mu.Lock()
		g := st.group
		st.mu.Unlock()
		if g.Status == domain.StatusLocked || g.Status == domain.StatusNegotiation {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

// AddMember performs the join as one atomic step under the group mutex:
// duplicate and capacity checks, join record insert, counter increment, and
// the open → locked transition when the last slot fills.
func (s *Store) AddMember(_ context.Context, groupID, memberID uuid.UUID) (domain.Group, error) {
	st, err := s.state(groupID)
	if err != nil {
		return domain.Group{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.members[memberID]; ok {
		return domain.Group{}, domain.ErrAlreadyMember
	}
	if st.group.CurrentMembers == st.group.MaxMembers {
		return domain.Group{}, domain.ErrGroupFull
	}

	st.members[memberID] = domain.Membership{
		GroupID:  groupID,
		MemberID: memberID,
		JoinedAt: time.Now().UTC(),
	}
	st.group.CurrentMembers++
	if st.group.CurrentMembers == st.group.MaxMembers {
		st.group.Status = domain.StatusLocked
	}
	return st.group, nil
}

// AddOffer inserts an offer for a capacity-reached group. The first offer
// moves the group from locked to negotiation; later offers leave it alone.
func (s *Store) AddOffer(_ context.Context, o domain.Offer) (domain.Offer, error) {
	st, err := s.state(o.GroupID)
	if err != nil {
		return domain.Offer{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.group.Status.AcceptsOffers() {
		return domain.Offer{}, domain.ErrGroupNotLocked
	}

	o.ID = uuid.New()
	o.Votes = 0
	o.CreatedAt = time.Now().UTC()
	st.offers = append(st.offers, o)

	if st.group.Status == domain.StatusLocked {
		st.group.Status = domain.StatusNegotiation
	}
	return o, nil
}

// ListOffers returns the group's offers in creation order.
func (s *Store) ListOffers(_ context.Context, groupID uuid.UUID) ([]domain.Offer, error) {
	st, err := s.state(groupID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	offers := make([]domain.Offer, len(st.offers))
	copy(offers, st.offers)
	return offers, nil
}

// CastVote records the vote and bumps the offer counter in one step.
func (s *Store) CastVote(_ context.Context, groupID, memberID, offerID uuid.UUID) (domain.Offer, error) {
	st, err := s.state(groupID)
	if err != nil {
		return domain.Offer{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.members[memberID]; !ok {
		return domain.Offer{}, domain.ErrNotAMember
	}

	idx := -1
	for i := range st.offers {
		if st.offers[i].ID == offerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Offer{}, domain.ErrNotFound
	}

	if _, ok := st.votes[memberID]; ok {
		return domain.Offer{}, domain.ErrAlreadyVoted
	}

	st.votes[memberID] = domain.Vote{
		GroupID:  groupID,
		MemberID: memberID,
		OfferID:  offerID,
		CastAt:   time.Now().UTC(),
	}
	st.offers[idx].Votes++
	return st.offers[idx], nil
}

// GetAnalytics assembles the projection under the group mutex, so it never
// observes a join or vote mid-flight. Membership and vote counts are
// recomputed from the records and cross-checked against the counters.
func (s *Store) GetAnalytics(_ context.Context, groupID uuid.UUID) (domain.Analytics, error) {
	st, err := s.state(groupID)
	if err != nil {
		return domain.Analytics{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.members) != st.group.CurrentMembers {
		return domain.Analytics{}, domain.ErrInconsistent
	}

	sumVotes := 0
	offers := make([]domain.Offer, len(st.offers))
	for i, o := range st.offers {
		offers[i] = o
		sumVotes += o.Votes
	}
	if sumVotes != len(st.votes) {
		return domain.Analytics{}, domain.ErrInconsistent
	}

	return domain.Analytics{
		Group:        st.group,
		MembersCount: len(st.members),
		TotalVotes:   sumVotes,
		Offers:       offers,
	}, nil
}

// state looks up the per-group state, returning domain.ErrNotFound for
// unknown IDs.
func (s *Store) state(id uuid.UUID) (*groupState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.groups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return st, nil
}
