package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/markethub/catalog-server/internal/model"
)

// BcryptHasher implements model.PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

var _ model.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the default bcrypt cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt hash of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether the password matches the stored hash.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
