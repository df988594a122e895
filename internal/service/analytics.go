package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// AnalyticsService exposes the read-only group projection. The store
// guarantees the snapshot is consistent and surfaces domain.ErrInconsistent
// when the vote ledger and offer counters disagree.
type AnalyticsService struct {
	store store.Store
}

// NewAnalyticsService constructs an AnalyticsService backed by the provided store.
func NewAnalyticsService(st store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

// Get returns the analytics projection for a group.
// Returns domain.ErrNotFound if the group is absent and
// domain.ErrInconsistent on a corrupted ledger.
func (s *AnalyticsService) Get(ctx context.Context, groupID uuid.UUID) (domain.Analytics, error) {
	result, err := s.store.GetAnalytics(ctx, groupID)
	if err != nil {
		return domain.Analytics{}, fmt.Errorf("service.AnalyticsService.Get: %w", err)
	}
	if result.Offers == nil {
		result.Offers = []domain.Offer{}
	}
	return result, nil
}
