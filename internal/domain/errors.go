package domain

import "errors"

// ErrNotFound is returned by store and service functions when the referenced
// group, offer, or member join record does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative price).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrAlreadyMember is returned when a member attempts to join a group it
// already belongs to. Duplicate joins are rejected rather than silently
// accepted so callers can distinguish duplicate submissions.
var ErrAlreadyMember = errors.New("already a member")

// ErrGroupFull is returned when a join attempt hits a group whose
// current_members already equals max_members.
var ErrGroupFull = errors.New("group is full")

// ErrGroupNotLocked is returned when an offer is attached to a group that has
// not reached capacity. Dealer negotiation begins only after the lock.
var ErrGroupNotLocked = errors.New("group is not locked")

// ErrNotAMember is returned when a vote is cast by a principal with no join
// record for the group. Only members may vote.
var ErrNotAMember = errors.New("not a member of the group")

// ErrAlreadyVoted is returned when a member who has already endorsed an offer
// in a group tries to vote again. Votes are immutable once cast.
var ErrAlreadyVoted = errors.New("already voted")

// ErrInconsistent signals a violated ledger invariant (e.g. the sum of offer
// vote counters diverging from the vote records). It is not user-recoverable:
// handlers map it to HTTP 500 and further mutation of the affected group
// should be halted pending investigation.
var ErrInconsistent = errors.New("inconsistent ledger state")
