// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	seasonRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/handler"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/repository"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/service"
)

// RegisterRoutes registers team routes on an authenticated group.
func RegisterRoutes(r gin.IRouter, client store.Client, logger *zap.SugaredLogger) {
	repo := repository.New(client, logger)
	svc := service.New(repo, seasonRepository.New(client, logger), logger)
	h := handler.New(svc, logger)

	r.GET("/teams", h.ListTeams)
	r.POST("/teams", h.CreateTeam)
	r.PATCH("/teams/:id", h.UpdateTeam)
	r.DELETE("/teams/:id", h.DeleteTeam)
}
