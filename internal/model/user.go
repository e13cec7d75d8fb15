package model

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole maps a raw string onto a known role. Unknown values fail
// with ErrInvalidRole instead of reaching storage.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrInvalidRole
	}
}

// User represents a stored user account.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an email address. All lookups and
// writes go through the normalized form so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupParams contains parameters for self-service registration.
type SignupParams struct {
	Name     string
	Email    string
	Password string
}

// CreateUserParams contains parameters for the admin create operation.
type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserParams carries a partial user update. Nil fields are left
// unchanged.
type UpdateUserParams struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// Empty reports whether no field is set.
func (p UpdateUserParams) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Role == nil
}
