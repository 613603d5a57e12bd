// Package router provides navigation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/navigation/handler"
)

// RegisterRoutes registers the sidebar on the authenticated group and the
// route resolver on the public one, since the resolver answers for
// unauthenticated clients too.
func RegisterRoutes(public, authenticated gin.IRouter, logger *zap.SugaredLogger) {
	h := handler.New(logger)

	authenticated.GET("/navigation", h.Navigation)
	public.GET("/navigation/resolve", h.Resolve)
}
