// Package handler provides HTTP handlers for season endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/season/service"
)

// Messages shown for season actions.
const (
	MsgLoadFailed   = "Error al cargar datos"
	MsgCreateFailed = "Error al crear la temporada"
	MsgSetFailed    = "Error al cambiar la temporada actual"
)

// Handler handles HTTP requests for season endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new season handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListSeasons handles GET /seasons.
func (h *Handler) ListSeasons(c *gin.Context) {
	seasons, err := h.service.ListSeasons(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		h.logger.Errorw("error listing seasons", "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seasons": seasons})
}

// CurrentSeason handles GET /seasons/current. A club without a current
// season gets {"season": null}.
func (h *Handler) CurrentSeason(c *gin.Context) {
	season, err := h.service.CurrentSeason(c.Request.Context(), middleware.ScopeFrom(c))
	if err != nil {
		h.logger.Errorw("error getting current season", "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"season": season})
}

// CreateSeason handles POST /seasons. The body may be empty.
func (h *Handler) CreateSeason(c *gin.Context) {
	var req model.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "invalid request body")
		return
	}

	season, err := h.service.CreateSeason(c.Request.Context(), middleware.ScopeFrom(c), &req)
	if err != nil {
		h.logger.Errorw("error creating season", "error", err)
		response.SaveFailed(c, err, MsgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"season": season})
}

// SetCurrentSeason handles POST /seasons/:id/current.
func (h *Handler) SetCurrentSeason(c *gin.Context) {
	if err := h.service.SetCurrentSeason(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id")); err != nil {
		h.logger.Errorw("error setting current season", "season_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgSetFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
