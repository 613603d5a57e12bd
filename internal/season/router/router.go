// Package router provides season module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/handler"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// RegisterRoutes registers season routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, client store.Client, clock clockwork.Clock, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(client, logger), clock, logger)
	h := handler.New(svc, logger)

	r.GET("/seasons", h.ListSeasons)
	r.GET("/seasons/current", h.CurrentSeason)
	r.POST("/seasons", h.CreateSeason)
	r.POST("/seasons/:id/current", h.SetCurrentSeason)
}
