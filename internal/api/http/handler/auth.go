package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

// AuthService defines signup and signin operations.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SigninRequest represents the signin request payload.
type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a new account and returns a bearer token.
func (h *Auth) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Signup(c.Request.Context(), model.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token})
}

// Signin authenticates by email and password and returns a bearer token.
func (h *Auth) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Signin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token})
}
