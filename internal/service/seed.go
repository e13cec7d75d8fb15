package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

// Seeder creates the default admin account at startup when it does not
// exist yet. The account is identified by the configured email; the
// same email protects it from role change and deletion in the policy.
type Seeder struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger

	email    string
	name     string
	password string
}

func NewSeeder(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger, email, name, password string) *Seeder {
	return &Seeder{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
		email:     model.NormalizeEmail(email),
		name:      name,
		password:  password,
	}
}

// Run seeds the default admin. Idempotent: an existing account is left
// untouched, and losing the create race to another instance is logged,
// not fatal.
func (s *Seeder) Run(ctx context.Context) error {
	exists, err := s.userStore.ExistsByEmail(ctx, s.email)
	if err != nil {
		return fmt.Errorf("failed to check default admin existence: %w", err)
	}
	if exists {
		s.logger.Info("Seeder: default admin already exists", "email", s.email)
		return nil
	}

	hash, err := s.hasher.Hash(s.password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	now := time.Now()
	_, err = s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        s.email,
		Name:         s.name,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrEmailTaken) {
		s.logger.Info("Seeder: lost default admin create race", "email", s.email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	s.logger.Warn("Seeder: created default admin, change the password immediately", "email", s.email)

	return nil
}
