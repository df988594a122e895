package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cargroup/backend/internal/service"
)

// CreateGroupRequest is the body of POST /groups.
type CreateGroupRequest struct {
	CarModel   string `json:"car_model"`
	Brand      string `json:"brand"`
	City       string `json:"city"`
	MaxMembers int    `json:"max_members"`
}

// CreateGroup handles POST /groups. Admin only.
func (s *Server) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	created, err := s.groups.Create(r.Context(), service.GroupSpec{
		CarModel:   req.CarModel,
		Brand:      req.Brand,
		City:       req.City,
		MaxMembers: req.MaxMembers,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GetGroup handles GET /groups/{id}.
func (s *Server) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	group, err := s.groups.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, group)
}

// ListLockedGroups handles GET /admin/locked-groups. Admin only.
// Returns locked and negotiating groups in creation order.
func (s *Server) ListLockedGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.ListLocked(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, groups)
}

// groupID parses the {id} path parameter. A malformed UUID cannot reference
// any group, so it is reported as not_found rather than a validation error.
func groupID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondErrorCode(w, http.StatusNotFound, "not_found", "group not found")
		return uuid.Nil, false
	}
	return id, true
}
