// Package service contains the business logic for the group car-buying
// engine. Services validate inputs, enforce business rules, and orchestrate
// store calls. No SQL lives here — services depend on the store.Store
// interface, not an implementation.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
	"github.com/cargroup/backend/internal/store"
)

// GroupSpec carries the caller-supplied fields for a new group.
// Everything in it is immutable after creation.
type GroupSpec struct {
	CarModel   string
	Brand      string
	City       string
	MaxMembers int
}

// GroupService implements the group store operations: creation, lookup, and
// the locked-groups listing consumed by the admin dashboard.
type GroupService struct {
	store store.Store
}

// NewGroupService constructs a GroupService backed by the provided store.
func NewGroupService(st store.Store) *GroupService {
	return &GroupService{store: st}
}

// Create validates and persists a new group. New groups always start with
// status=open and current_members=0.
// Returns domain.ErrValidation if input violates business rules.
func (s *GroupService) Create(ctx context.Context, spec GroupSpec) (domain.Group, error) {
	if err := validateGroupSpec(spec); err != nil {
		return domain.Group{}, err
	}
	result, err := s.store.CreateGroup(ctx, domain.Group{
		CarModel:   strings.TrimSpace(spec.CarModel),
		Brand:      strings.TrimSpace(spec.Brand),
		City:       strings.TrimSpace(spec.City),
		MaxMembers: spec.MaxMembers,
	})
	if err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single group by ID.
// Returns domain.ErrNotFound if no group with that ID exists.
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (domain.Group, error) {
	result, err := s.store.GetGroup(ctx, id)
	if err != nil {
		return domain.Group{}, fmt.Errorf("service.GroupService.GetByID: %w", err)
	}
	return result, nil
}

// ListLocked returns all locked and negotiating groups in creation order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *GroupService) ListLocked(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.store.ListLockedGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.GroupService.ListLocked: %w", err)
	}
	if groups == nil {
		return []domain.Group{}, nil
	}
	return groups, nil
}

// validateGroupSpec enforces the creation rules:
//   - car_model, brand, and city must be non-empty (whitespace-only rejected).
//   - max_members must be a positive integer.
func validateGroupSpec(spec GroupSpec) error {
	if strings.TrimSpace(spec.CarModel) == "" {
		return fmt.Errorf("%w: car_model is required", domain.ErrValidation)
	}
	if strings.TrimSpace(spec.Brand) == "" {
		return fmt.Errorf("%w: brand is required", domain.ErrValidation)
	}
	if strings.TrimSpace(spec.City) == "" {
		return fmt.Errorf("%w: city is required", domain.ErrValidation)
	}
	if spec.MaxMembers <= 0 {
		return fmt.Errorf("%w: max_members must be positive", domain.ErrValidation)
	}
	return nil
}
