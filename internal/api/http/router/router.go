// Package router wires handlers and middleware into the HTTP route tree.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markethub/catalog-server/internal/api/http/handler"
	"github.com/markethub/catalog-server/internal/api/http/middleware"
	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

// Handlers groups the endpoint handlers mounted by New.
type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Product *handler.Product
	Health  *handler.Health
}

// New builds the gin engine with all routes and middleware attached.
func New(handlers Handlers, authenticate *middleware.Authenticate, logging *middleware.Logging, log *logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	// Panics must not leak internals to the client.
	engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("HTTP handler panicked",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"panic", recovered)
		c.AbortWithStatusJSON(http.StatusNotFound, handler.ErrorResponse{
			Message: "resource not found",
			Status:  http.StatusNotFound,
		})
	}))
	engine.Use(logging.Handle())
	engine.Use(authenticate.Handle())

	engine.GET("/health", handlers.Health.Check)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", handlers.Auth.Signup)
	auth.POST("/signin", handlers.Auth.Signin)

	users := api.Group("/users", authenticate.RequireAuthenticated())
	users.GET("", handlers.User.List)
	users.POST("", authenticate.RequireAdmin(), handlers.User.Create)
	users.GET("/:id", handlers.User.Get)
	users.PUT("/:id", handlers.User.Update)
	users.DELETE("/:id", handlers.User.Delete)

	products := api.Group("/products")
	products.GET("", handlers.Product.List)
	products.GET("/:id", handlers.Product.Get)
	products.GET("/:id/image", handlers.Product.GetImage)
	products.POST("", authenticate.RequireRole(model.RoleUser), handlers.Product.Create)
	products.PUT("/:id", authenticate.RequireAuthenticated(), handlers.Product.Update)
	products.DELETE("/:id", authenticate.RequireAuthenticated(), handlers.Product.Delete)
	products.PUT("/:id/image", authenticate.RequireAuthenticated(), handlers.Product.SetImage)

	return engine
}
