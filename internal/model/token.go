package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TokenManager issues and verifies signed bearer tokens. Parse performs
// signature and expiry checks on a single path; there is no unchecked
// decode.
type TokenManager interface {
	Issue(user User) (string, error)
	Parse(token string) (TokenClaims, error)
}

// TokenClaims is the verified payload of a bearer token. The claims are
// the complete security-relevant content of the token; anything beyond
// them must be re-validated against storage.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

var (
	// ErrTokenInvalid covers bad signatures, malformed structure and
	// wrong algorithms.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned once the expiry instant is reached.
	ErrTokenExpired = errors.New("token is expired")
)
