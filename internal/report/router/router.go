// Package router provides report module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	playerRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/handler"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// RegisterRoutes registers report routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, client store.Client, clock clockwork.Clock, logger *zap.SugaredLogger) {
	svc := service.New(repository.New(client, logger), playerRepository.New(client, logger), clock, logger)
	h := handler.New(svc, logger)

	r.GET("/players/:id/reports", h.ListReports)
	r.POST("/players/:id/reports", h.CreateReport)
	r.PATCH("/reports/:id", h.UpdateReport)
}
