// Package handler provides HTTP handlers for the sidebar and the route guard.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
)

// Handler handles HTTP requests for navigation endpoints.
type Handler struct {
	logger *zap.SugaredLogger
}

// New creates a new navigation handler instance.
func New(logger *zap.SugaredLogger) *Handler {
	return &Handler{logger: logger}
}

// NavigationResponse lists the sidebar entries of the calling client.
type NavigationResponse struct {
	Items     []policy.NavItem `json:"items"`
	RoleLabel string           `json:"role_label"`
}

// ResolveResponse tells the front end where a path lands.
type ResolveResponse struct {
	Path     string `json:"path"`
	Target   string `json:"target"`
	Redirect bool   `json:"redirect"`
}

// Navigation handles GET /navigation.
// @Summary Sidebar entries for the signed-in role
// @Tags Navigation
// @Produce json
// @Success 200 {object} NavigationResponse
// @Router /navigation [get]
func (h *Handler) Navigation(c *gin.Context) {
	role := middleware.ProfileFrom(c).RoleOrNone()
	c.JSON(http.StatusOK, NavigationResponse{
		Items:     policy.NavigationSet(role),
		RoleLabel: policy.RoleLabel(role),
	})
}

// Resolve handles GET /navigation/resolve?path=.
func (h *Handler) Resolve(c *gin.Context) {
	path := c.Query("path")
	authenticated := false
	if st := middleware.StateFrom(c); st != nil {
		authenticated = st.IsAuthenticated()
	}

	target := policy.ResolveRoute(path, authenticated)
	if target != path {
		h.logger.Debugw("route redirected", "path", path, "target", target, "authenticated", authenticated)
	}

	c.JSON(http.StatusOK, ResolveResponse{
		Path:     path,
		Target:   target,
		Redirect: target != path,
	})
}
