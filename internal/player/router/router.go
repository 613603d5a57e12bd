// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/handler"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// RegisterRoutes registers player routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, client store.Client, logger *zap.SugaredLogger) {
	repo := repository.New(client, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/players", h.ListPlayers)
	r.POST("/players", h.CreatePlayer)
	r.GET("/players/:id", h.GetPlayer)
	r.PATCH("/players/:id", h.UpdatePlayer)
	r.POST("/players/:id/deactivate", h.DeactivatePlayer)
}
