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

// User implements user management. Every operation takes the
// authenticated principal explicitly and consults the Policy before
// touching storage.
type User struct {
	userStore    model.UserStore
	productStore model.ProductStore
	hasher       model.PasswordHasher
	policy       *Policy
	logger       *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	productStore model.ProductStore,
	hasher model.PasswordHasher,
	policy *Policy,
	logger *logger.Logger,
) *User {
	return &User{
		userStore:    userStore,
		productStore: productStore,
		hasher:       hasher,
		policy:       policy,
		logger:       logger,
	}
}

// List returns all users for admins and only the principal itself for
// regular users.
func (s *User) List(ctx context.Context, principal model.User) ([]model.User, error) {
	if principal.IsAdmin() {
		users, err := s.userStore.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return users, nil
	}

	self, err := s.userStore.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return []model.User{self}, nil
}

// Create creates a user with an explicit role. Reaching this operation
// is restricted to admins at the routing layer; the role string is
// still parsed strictly here.
func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	role, err := model.ParseRole(params.Role)
	if err != nil {
		return model.User{}, err
	}

	email := model.NormalizeEmail(params.Email)
	exists, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         params.Name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("User service: user created", "user_id", user.ID, "role", user.Role)

	return user, nil
}

// Get returns a user by id. Admin or self only.
func (s *User) Get(ctx context.Context, principal model.User, id uuid.UUID) (model.User, error) {
	if !s.policy.IsSelfOrAdmin(principal, id) {
		return model.User{}, model.ErrForbidden
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	return user, nil
}

// Update applies a partial update to a user. Admin or self only. A
// non-self admin target cannot be touched by another admin; the default
// admin accepts nothing but a password change; role changes require the
// admin role.
func (s *User) Update(ctx context.Context, principal model.User, id uuid.UUID, params model.UpdateUserParams) (model.User, error) {
	if !s.policy.IsSelfOrAdmin(principal, id) {
		return model.User{}, model.ErrForbidden
	}
	if params.Empty() {
		return model.User{}, model.ErrEmptyUpdate
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	isSelf := principal.ID == id
	if user.IsAdmin() && !isSelf {
		s.logger.Info("User service: refused cross-admin update",
			"principal_id", principal.ID,
			"target_id", id)
		return model.User{}, model.ErrForbidden
	}

	if s.policy.IsDefaultAdmin(user) {
		if params.Name != nil || params.Email != nil || params.Role != nil {
			s.logger.Info("User service: refused default admin change", "target_id", id)
			return model.User{}, model.ErrForbidden
		}
		if params.Password != nil && *params.Password != "" {
			hash, err := s.hasher.Hash(*params.Password)
			if err != nil {
				return model.User{}, fmt.Errorf("failed to hash password: %w", err)
			}
			user.PasswordHash = hash
		}
	} else {
		if params.Name != nil {
			user.Name = *params.Name
		}
		if params.Email != nil {
			newEmail := model.NormalizeEmail(*params.Email)
			if newEmail != user.Email {
				exists, err := s.userStore.ExistsByEmail(ctx, newEmail)
				if err != nil {
					return model.User{}, fmt.Errorf("failed to check email existence: %w", err)
				}
				if exists {
					return model.User{}, model.ErrEmailTaken
				}
			}
			user.Email = newEmail
		}
		if params.Password != nil && *params.Password != "" {
			hash, err := s.hasher.Hash(*params.Password)
			if err != nil {
				return model.User{}, fmt.Errorf("failed to hash password: %w", err)
			}
			user.PasswordHash = hash
		}
		if params.Role != nil {
			if !s.policy.CanChangeRole(principal) {
				return model.User{}, model.ErrForbidden
			}
			role, err := model.ParseRole(*params.Role)
			if err != nil {
				return model.User{}, err
			}
			user.Role = role
		}
	}

	user, err = s.userStore.Update(ctx, user)
	if err != nil {
		return model.User{}, err
	}

	s.logger.Info("User service: user updated", "user_id", user.ID)

	return user, nil
}

// Delete removes a user and all products it owns. Admin or self only;
// the default admin is never deletable and a non-self admin target is
// protected from other admins. Products are deleted first so a failure
// between the two steps cannot leave a user without its cleanup ever
// having been attempted.
func (s *User) Delete(ctx context.Context, principal model.User, id uuid.UUID) error {
	if !s.policy.IsSelfOrAdmin(principal, id) {
		return model.ErrForbidden
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if s.policy.IsDefaultAdmin(user) {
		s.logger.Info("User service: refused default admin deletion", "target_id", id)
		return model.ErrForbidden
	}

	isSelf := principal.ID == id
	if user.IsAdmin() && !isSelf {
		s.logger.Info("User service: refused cross-admin deletion",
			"principal_id", principal.ID,
			"target_id", id)
		return model.ErrForbidden
	}

	if err := s.productStore.DeleteByOwnerID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete owned products: %w", err)
	}

	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Lost a delete race after the product cleanup; the end
			// state is the same.
			return nil
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", id)

	return nil
}
