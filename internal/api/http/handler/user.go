package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

// UserService defines account management operations.
type UserService interface {
	List(ctx context.Context, principal model.User) ([]model.User, error)
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Get(ctx context.Context, principal model.User, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, principal model.User, id uuid.UUID, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, principal model.User, id uuid.UUID) error
}

// CreateUserRequest represents the admin create-user payload.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

// UpdateUserRequest represents a partial user update. Absent fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role"`
}

// UserResponse is the public view of an account. The password hash never
// leaves the service.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}

// User handles HTTP endpoints for account management.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns accounts visible to the caller. Admins see every account,
// regular users only their own.
func (h *User) List(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	users, err := h.userService.List(c.Request.Context(), principal)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, newUserResponse(user))
	}

	c.JSON(http.StatusOK, resp)
}

// Create provisions a new account with an explicit role.
func (h *User) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(c.Request.Context(), model.CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Get returns a single account by id.
func (h *User) Get(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// Update applies a partial update to an account.
func (h *User) Update(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Update(c.Request.Context(), principal, id, model.UpdateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// Delete removes an account together with the products it owns.
func (h *User) Delete(c *gin.Context) {
	principal, ok := h.contextManager.Principal(c.Request.Context())
	if !ok {
		respondErrorStatus(c, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), principal, id); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
