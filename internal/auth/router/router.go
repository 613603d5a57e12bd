// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/auth/handler"
)

// RegisterRoutes registers auth routes. They need the client state but no
// authentication.
func RegisterRoutes(r gin.IRouter, logins handler.LoginRecorder, logger *zap.SugaredLogger) {
	h := handler.New(logins, logger)

	auth := r.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/me", h.Me)
}
