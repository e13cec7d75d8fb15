package model

import "context"

// ContextManager carries the authenticated principal through the request
// context. The principal is request-scoped and never persisted.
type ContextManager interface {
	SetPrincipal(ctx context.Context, user User) context.Context
	Principal(ctx context.Context) (User, bool)
}
