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

// Auth implements signup, signin and session resolution.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	hasher       model.PasswordHasher
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	hasher model.PasswordHasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		hasher:       hasher,
		logger:       logger,
	}
}

// Signup registers a new USER-role account and returns a bearer token.
// Duplicate emails fail with model.ErrEmailTaken; the store's unique
// index decides the winner when two signups race past the existence
// check.
func (a *Auth) Signup(ctx context.Context, params model.SignupParams) (string, error) {
	email := model.NormalizeEmail(params.Email)

	a.logger.Debug("Auth service: starting signup", "email", email)

	exists, err := a.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		a.logger.Error("Auth service: failed to check email existence",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		a.logger.Info("Auth service: email already registered", "email", email)
		return "", model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         params.Name,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			a.logger.Info("Auth service: lost signup race", "email", email)
			return "", model.ErrEmailTaken
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: signup completed", "user_id", user.ID)

	return token, nil
}

// Signin authenticates by email and password and returns a bearer
// token. Unknown email and wrong password are deliberately collapsed
// into the same model.ErrInvalidCredentials.
func (a *Auth) Signin(ctx context.Context, email, password string) (string, error) {
	email = model.NormalizeEmail(email)

	a.logger.Debug("Auth service: starting signin", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokenManager.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: signin completed", "user_id", user.ID)

	return token, nil
}

// Resolve verifies a bearer token and returns the live user it names.
// A token is only as valid as the current state of that account: after
// parsing, the user is reloaded and the embedded email and role claims
// are compared against stored state, so deletion or any profile change
// after issuance invalidates the token. Resolve never returns an error;
// every failure is an empty result.
func (a *Auth) Resolve(ctx context.Context, tokenString string) (model.User, bool) {
	claims, err := a.tokenManager.Parse(tokenString)
	if err != nil {
		a.logger.Debug("Auth service: token rejected", "error", err.Error())
		return model.User{}, false
	}

	user, err := a.userStore.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Debug("Auth service: token subject no longer exists", "user_id", claims.UserID)
		return model.User{}, false
	}
	if err != nil {
		a.logger.Error("Auth service: failed to load token subject",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.User{}, false
	}

	if claims.Email != user.Email || claims.Role != string(user.Role) {
		a.logger.Debug("Auth service: stale token claims", "user_id", user.ID)
		return model.User{}, false
	}

	return user, true
}
