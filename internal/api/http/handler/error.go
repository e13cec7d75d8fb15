package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/markethub/catalog-server/internal/logger"
	"github.com/markethub/catalog-server/internal/model"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// respondError translates service errors into HTTP responses. Anything
// outside the known taxonomy is logged server-side and reported as 404,
// so no internal failure detail ever reaches a client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		respondErrorStatus(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrForbidden):
		respondErrorStatus(c, http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrEmailTaken):
		respondErrorStatus(c, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInvalidRole), errors.Is(err, model.ErrEmptyUpdate):
		respondErrorStatus(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		respondErrorStatus(c, http.StatusNotFound, err.Error())
	default:
		log.Error("unhandled error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error())
		respondErrorStatus(c, http.StatusNotFound, "resource not found")
	}
}

func respondErrorStatus(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Status: status})
}
