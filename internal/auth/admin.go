package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidCredentials is returned by Admin.Login for any credential
// failure. Wrong email and wrong password are indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Admin authenticates the single env-configured admin principal and issues
// its tokens. There is no user table — administrator provisioning is an
// ops concern, not engine state.
type Admin struct {
	email        string
	passwordHash string
	tokens       *Tokens
}

// NewAdmin constructs an Admin from the configured email and bcrypt hash.
func NewAdmin(email, passwordHash string, tokens *Tokens) *Admin {
	return &Admin{email: email, passwordHash: passwordHash, tokens: tokens}
}

// Login validates the credentials and returns a signed admin token.
// Returns ErrInvalidCredentials on any mismatch.
func (a *Admin) Login(email, password string) (string, error) {
	// Constant-time email compare, and the bcrypt check runs regardless
	// of the email outcome, so response timing leaks nothing.
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.email)) == 1
	passwordOK := CheckPassword(a.passwordHash, password) == nil
	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}
	return a.tokens.IssueAdmin(a.email)
}
