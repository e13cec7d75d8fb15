// Package context carries the authenticated principal through the
// request context.
package context

import (
	"context"

	"github.com/markethub/catalog-server/internal/model"
)

type principalKey struct{}

// Manager implements model.ContextManager on top of context values. The
// principal is attached once per request by the authenticate middleware
// and read by handlers; it never outlives the request.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipal returns a child context carrying the authenticated user.
func (m *Manager) SetPrincipal(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, principalKey{}, user)
}

// Principal returns the authenticated user attached to the context, if
// any.
func (m *Manager) Principal(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(principalKey{}).(model.User)
	return user, ok
}
