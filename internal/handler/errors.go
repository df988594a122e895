package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cargroup/backend/internal/domain"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-checkable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError maps a service error onto the HTTP taxonomy. Every
// caller-input error keeps its distinct code so the presentation layer can
// show a specific message instead of a generic failure banner.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondErrorCode(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, domain.ErrValidation):
		respondErrorCode(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrAlreadyMember):
		respondErrorCode(w, http.StatusConflict, "already_member", "already a member of this group")
	case errors.Is(err, domain.ErrGroupFull):
		respondErrorCode(w, http.StatusConflict, "group_full", "group is full")
	case errors.Is(err, domain.ErrGroupNotLocked):
		respondErrorCode(w, http.StatusConflict, "group_not_locked", "group has not reached capacity yet")
	case errors.Is(err, domain.ErrAlreadyVoted):
		respondErrorCode(w, http.StatusConflict, "already_voted", "already voted in this group")
	case errors.Is(err, domain.ErrNotAMember):
		respondErrorCode(w, http.StatusForbidden, "not_a_member", "only group members may vote")
	case errors.Is(err, domain.ErrInconsistent):
		slog.Error("ledger inconsistency detected", "error", err)
		respondErrorCode(w, http.StatusInternalServerError, "inconsistent", "internal ledger inconsistency")
	default:
		slog.Error("unhandled error", "error", err)
		respondErrorCode(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// respondErrorCode writes the error envelope with the given code and message.
func respondErrorCode(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// unwrapMessage extracts the human-readable part from a wrapped validation
// error, e.g. "service.OfferService.Add: validation error: price must be
// non-negative" → "price must be non-negative".
func unwrapMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
