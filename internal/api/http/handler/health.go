package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports service liveness.
type Health struct {
	pinger Pinger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger Pinger) *Health {
	return &Health{pinger: pinger}
}

// Check responds 200 when the service and its database are up.
func (h *Health) Check(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
