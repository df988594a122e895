package handler

import (
	"encoding/json"
	"net/http"

	"github.com/cargroup/backend/internal/service"
)

// AddOfferRequest is the body of POST /admin/groups/{id}/offers.
type AddOfferRequest struct {
	DealerName   string `json:"dealer_name"`
	Price        int64  `json:"price"`
	DeliveryTime string `json:"delivery_time"`
	BonusItems   string `json:"bonus_items"`
}

// AddOffer handles POST /admin/groups/{id}/offers. Admin only.
func (s *Server) AddOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	var req AddOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	offer, err := s.offers.Add(r.Context(), id, service.OfferInput{
		DealerName:   req.DealerName,
		Price:        req.Price,
		DeliveryTime: req.DeliveryTime,
		BonusItems:   req.BonusItems,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, offer)
}

// ListOffers handles GET /groups/{id}/offers.
// Offers come back in creation order, matching the analytics view.
func (s *Server) ListOffers(w http.ResponseWriter, r *http.Request) {
	id, ok := groupID(w, r)
	if !ok {
		return
	}

	offers, err := s.offers.ListByGroup(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, offers)
}
