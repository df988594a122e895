package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// CastVoteRequest is the body of POST /groups/{id}/votes.
type CastVoteRequest struct {
	MemberID string `json:"member_id"`
	OfferID  string `json:"offer_id"`
}

// CastVote handles POST /groups/{id}/votes. Returns the updated offer.
func (s *Server) CastVote(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var req CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		respondErrorCode(w, http.StatusUnprocessableEntity, "validation_error", "member_id must be a valid UUID")
		return
	}
	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		respondErrorCode(w, http.StatusUnprocessableEntity, "validation_error", "offer_id must be a valid UUID")
		return
	}

	offer, err := s.votes.Cast(r.Context(), id, memberID, offerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offer)
}
