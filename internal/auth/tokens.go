// Package auth issues and verifies the admin JWTs that gate the
// administrative endpoints. Member authentication is an external
// collaborator — the engine only ever sees member IDs.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role the engine itself authenticates.
const RoleAdmin = "admin"

// ErrInvalidToken is returned when a token fails signature, expiry, or role
// checks. Handlers map it to HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// claims is the JWT payload: registered claims plus the principal's role.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Tokens signs and verifies HS256 JWTs with a shared secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens constructs a Tokens with the given signing secret and lifetime.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// IssueAdmin returns a signed admin token for the given subject (the admin's
// email).
func (t *Tokens) IssueAdmin(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Role: RoleAdmin,
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Tokens.IssueAdmin: %w", err)
	}
	return signed, nil
}

// VerifyAdmin validates signature, expiry, and the admin role, returning the
// token subject. All failures collapse to ErrInvalidToken — callers get no
// detail about why a token was rejected.
func (t *Tokens) VerifyAdmin(tokenString string) (string, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if c.Role != RoleAdmin {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
