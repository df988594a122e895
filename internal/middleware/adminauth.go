package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// adminSubjectKey is the context key under which the verified admin subject
// is stored. Unexported type prevents collisions with other packages' keys.
type adminSubjectKey struct{}

// TokenVerifier validates a bearer token and returns the authenticated
// subject. Satisfied by *auth.Tokens.VerifyAdmin.
type TokenVerifier interface {
	VerifyAdmin(token string) (string, error)
}

// NewAdminAuth returns a middleware that rejects requests lacking a valid
// admin bearer token with 401 before they reach the core. The verified
// subject is placed in the request context for downstream logging.
func NewAdminAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}

			subject, err := verifier.VerifyAdmin(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminSubjectKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminSubject returns the verified admin subject from the context, or ""
// when the request did not pass through NewAdminAuth.
func AdminSubject(ctx context.Context) string {
	subject, _ := ctx.Value(adminSubjectKey{}).(string)
	return subject
}

// unauthorized writes the same JSON error envelope the handlers use, so
// clients see one error shape regardless of which layer rejected them.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    "unauthorized",
			"message": "admin token required",
		},
	})
}
