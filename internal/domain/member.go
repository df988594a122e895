package domain

import (
	"time"

	"github.com/google/uuid"
)

// Membership is the join record linking a member principal to a group.
// A member appears at most once per group, and membership is monotonic —
// there is no leave operation.
type Membership struct {
	GroupID  uuid.UUID `json:"group_id"`
	MemberID uuid.UUID `json:"member_id"`
	JoinedAt time.Time `json:"joined_at"`
}
