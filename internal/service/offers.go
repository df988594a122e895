package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// OfferInput carries the caller-supplied fields for a new dealer offer.
type OfferInput struct {
	DealerName   string
	Price        int64
	DeliveryTime string
	BonusItems   string
}

// OfferService implements the offer ledger: attaching dealer offers to
// locked groups and listing them for analytics and the dashboard.
type OfferService struct {
	store store.Store
}

// NewOfferService constructs an OfferService backed by the provided store.
func NewOfferService(st store.Store) *OfferService {
	return &OfferService{store: st}
}

// Add validates and records a dealer offer for a group. The store rejects
// groups that have not locked yet and handles the locked → negotiation
// transition on the first offer.
// Returns domain.ErrValidation, domain.ErrNotFound, or domain.ErrGroupNotLocked.
func (s *OfferService) Add(ctx context.Context, groupID uuid.UUID, in OfferInput) (domain.Offer, error) {
	if err := validateOfferInput(in); err != nil {
		return domain.Offer{}, err
	}
	result, err := s.store.AddOffer(ctx, domain.Offer{
		GroupID:      groupID,
		DealerName:   strings.TrimSpace(in.DealerName),
		Price:        in.Price,
		DeliveryTime: strings.TrimSpace(in.DeliveryTime),
		BonusItems:   strings.TrimSpace(in.BonusItems),
	})
	if err != nil {
		return domain.Offer{}, fmt.Errorf("service.OfferService.Add: %w", err)
	}
	return result, nil
}

// ListByGroup returns all offers of a group ordered by creation time.
// Always returns a non-nil slice so callers can safely range over it.
func (s *OfferService) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]domain.Offer, error) {
	offers, err := s.store.ListOffers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("service.OfferService.ListByGroup: %w", err)
	}
	if offers == nil {
		return []domain.Offer{}, nil
	}
	return offers, nil
}

// validateOfferInput enforces the offer creation rules:
//   - dealer_name, delivery_time, and bonus_items must be non-empty.
//   - price must be non-negative.
func validateOfferInput(in OfferInput) error {
	if strings.TrimSpace(in.DealerName) == "" {
		return fmt.Errorf("%w: dealer_name is required", domain.ErrValidation)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if strings.TrimSpace(in.DeliveryTime) == "" {
		return fmt.Errorf("%w: delivery_time is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.BonusItems) == "" {
		return fmt.Errorf("%w: bonus_items is required", domain.ErrValidation)
	}
	return nil
}
