package handler

import (
	"encoding/json"
	"net/http"
)

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the admin bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /auth/login. It exchanges admin credentials for a
// bearer token. Wrong email and wrong password produce the same 401 — no
// account enumeration.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErrorCode(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	token, err := s.auth.Login(req.Email, req.Password)
	if err != nil {
		respondErrorCode(w, http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
