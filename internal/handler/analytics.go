package handler

import "net/http"

// GetAnalytics handles GET /admin/groups/{id}/analytics. Admin only.
// The projection is a consistent snapshot: members_count, total_votes, and
// the per-offer vote counts are all read under the group's serialization
// scope, so they never disagree with each other.
func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	analytics, err := s.analytics.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, analytics)
}
