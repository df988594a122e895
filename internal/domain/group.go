// Package domain contains the core data types for the group car-buying
// engine. This package has zero external dependencies beyond uuid and is
// imported by every other internal package (store, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// GroupStatus is the lifecycle state of a buying group.
// Transitions: open → locked (capacity reached) → negotiation (first offer)
// → closed (administrative finalize). A group never returns to open.
type GroupStatus string

const (
	StatusOpen        GroupStatus = "open"
	StatusLocked      GroupStatus = "locked"
	StatusNegotiation GroupStatus = "negotiation"
	StatusClosed      GroupStatus = "closed"
)

// AcceptsOffers reports whether dealer offers may be attached to a group in
// this status. Offers require a capacity-reached group that has not been
// finalized.
func (s GroupStatus) AcceptsOffers() bool {
	return s == StatusLocked || s == StatusNegotiation
}

// Group is a capacity-bounded cohort of members negotiating collectively for
// a car purchase. It is the top-level aggregate; members, offers, and votes
// all hang off a group by foreign key.
type Group struct {
	ID             uuid.UUID   `json:"id"`
	CarModel       string      `json:"car_model"`
	Brand          string      `json:"brand"`
	City           string      `json:"city"`
	MaxMembers     int         `json:"max_members"`
	CurrentMembers int         `json:"current_members"`
	Status         GroupStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
