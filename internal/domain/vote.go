package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote records a member's single endorsement of exactly one offer within a
// group. Uniqueness is keyed on (group_id, member_id), not (member_id,
// offer_id): a member gets one vote per group across all of its offers.
type Vote struct {
	GroupID  uuid.UUID `json:"group_id"`
	MemberID uuid.UUID `json:"member_id"`
	OfferID  uuid.UUID `json:"offer_id"`
	CastAt   time.Time `json:"cast_at"`
}
