package service

import (
	"github.com/google/uuid"

	"github.com/markethub/catalog-server/internal/model"
)

// Policy holds the pure authorization predicates consulted before every
// mutating operation. It has no side effects and no dependencies beyond
// the configured default-admin email.
type Policy struct {
	defaultAdminEmail string
}

// NewPolicy creates a Policy. The default admin is identified by email
// value, not by a stored flag.
func NewPolicy(defaultAdminEmail string) *Policy {
	return &Policy{defaultAdminEmail: model.NormalizeEmail(defaultAdminEmail)}
}

// IsSelfOrAdmin reports whether the principal is an admin or the target
// user itself.
func (p *Policy) IsSelfOrAdmin(principal model.User, targetID uuid.UUID) bool {
	return principal.IsAdmin() || principal.ID == targetID
}

// IsOwnerOrAdmin reports whether the principal is an admin or owns the
// resource.
func (p *Policy) IsOwnerOrAdmin(principal model.User, ownerID uuid.UUID) bool {
	return principal.IsAdmin() || principal.ID == ownerID
}

// CanChangeRole reports whether the principal may assign roles.
func (p *Policy) CanChangeRole(principal model.User) bool {
	return principal.IsAdmin()
}

// IsDefaultAdmin reports whether the user is the configured default
// admin account.
func (p *Policy) IsDefaultAdmin(user model.User) bool {
	return p.defaultAdminEmail != "" && p.defaultAdminEmail == user.Email
}
