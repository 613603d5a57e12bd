// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Checker reports whether a dependency is usable.
type Checker func(ctx context.Context) error

// Handler handles health check requests.
type Handler struct {
	checks  map[string]Checker
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// New creates a new health handler instance. checks maps a dependency name
// to its probe; with no checks the service reports itself healthy.
func New(checks map[string]Checker, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		checks:  checks,
		timeout: 5 * time.Second,
		logger:  logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resp := Response{Status: "ok"}
	status := http.StatusOK
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warnw("health check failed", "check", name, "error", err)
			resp.Checks[name] = "unhealthy"
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	c.JSON(status, resp)
}
