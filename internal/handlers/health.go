package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"songvault/internal/cache"
	"songvault/internal/models"
)

// HealthHandler reports the health of the service's dependencies
type HealthHandler struct {
	db    *models.Database
	cache cache.Cache
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *models.Database, c cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{"database": "ok", "cache": "ok"}

	if err := h.db.Client.Ping(ctx, nil); err != nil {
		slog.Error("Database health check failed", "error", err)
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if err := h.cache.Health(ctx); err != nil {
		slog.Error("Cache health check failed", "error", err)
		checks["cache"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, checks)
}
