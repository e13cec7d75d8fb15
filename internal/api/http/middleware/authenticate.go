package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

const bearerPrefix = "Bearer "

// SessionResolver resolves live users from bearer tokens.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.User, bool)
}

// Authenticate extracts the bearer token from inbound requests and
// attaches the resolved principal to the request context. It runs once
// per request, before any authorization check.
type Authenticate struct {
	resolver       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Handle resolves the principal when a bearer token is presented. A
// missing, malformed, invalid or expired credential is never an error
// here: the request proceeds anonymously and route-level rules decide
// what anonymous callers may do.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c.GetHeader("Authorization"))

		if tokenString != "" {
			if user, ok := m.resolver.Resolve(c.Request.Context(), tokenString); ok {
				ctx := m.contextManager.SetPrincipal(c.Request.Context(), user)
				c.Request = c.Request.WithContext(ctx)
			}
		}

		c.Next()
	}
}

// RequireAuthenticated aborts anonymous requests with 401.
func (m *Authenticate) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.contextManager.Principal(c.Request.Context()); !ok {
			abortUnauthenticated(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts anonymous requests with 401 and authenticated
// non-admin requests with 403.
func (m *Authenticate) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(model.RoleAdmin)
}

// RequireRole aborts requests whose principal does not carry exactly
// the given role.
func (m *Authenticate) RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := m.contextManager.Principal(c.Request.Context())
		if !ok {
			abortUnauthenticated(c)
			return
		}
		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "forbidden",
				"status":  http.StatusForbidden,
			})
			return
		}
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": "authentication required",
		"status":  http.StatusUnauthorized,
	})
}

// extractBearerToken returns the token after the "Bearer " prefix, or
// an empty string when the header is absent or uses another scheme.
func extractBearerToken(header string) string {
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}
