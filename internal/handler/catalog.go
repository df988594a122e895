package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cargroup/backend/internal/catalog"
)

// CarDataResponse is the body of GET /car-data.
type CarDataResponse struct {
	Brands []string `json:"brands"`
}

// GetCarData handles GET /car-data. Returns all catalog brands.
func (s *Server) GetCarData(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, CarDataResponse{Brands: catalog.Brands()})
}

// GetBrandData handles GET /car-data/{brand}.
// Returns model → variant → transmission → price for the brand; unknown
// brands get an empty object, not a 404.
func (s *Server) GetBrandData(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Models(chi.URLParam(r, "brand")))
}
