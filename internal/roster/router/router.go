// Package router provides roster module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/handler"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// RegisterRoutes registers roster routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, client store.Client, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(client, logger), playerRepository.New(client, logger), logger)
	h := handler.New(svc, logger)

	r.GET("/teams/:id/roster", h.GetRoster)
	r.GET("/teams/:id/roster/available", h.AvailablePlayers)
	r.POST("/teams/:id/roster", h.AddPlayer)
	r.PATCH("/roster/:id", h.UpdateEntry)
	r.DELETE("/roster/:id", h.RemoveEntry)
}
