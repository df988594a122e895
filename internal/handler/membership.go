package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/domain"
)

// JoinGroupRequest is the body of POST /groups/{id}/join.
type JoinGroupRequest struct {
	MemberID string `json:"member_id"`
}

// JoinGroupResponse reports the updated group. Joined is always true on
// success — duplicate submissions are rejected with already_member, never
// silently absorbed, so callers can tell a retry apart from a first join.
type JoinGroupResponse struct {
	Group  domain.Group `json:"group"`
	Joined bool         `json:"joined"`
}

// JoinGroup handles POST /groups/{id}/join.
func (s *Server) JoinGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var req JoinGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		respondErrorCode(w, http.StatusUnprocessableEntity, "validation_error", "member_id must be a valid UUID")
		return
	}

	group, err := s.membership.Join(r.Context(), id, memberID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, JoinGroupResponse{Group: group, Joined: true})
}
