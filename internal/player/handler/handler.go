// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/player/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
)

// Messages shown by the players screens.
const (
	MsgLoadFailed   = "Error al cargar jugadoras"
	MsgSaveFailed   = "Error al guardar jugadora"
	MsgNotFound     = "Jugadora no encontrada"
	MsgDetailFailed = "Error al cargar la información de la jugadora"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListPlayers handles GET /players.
// @Summary List club players
// @Tags Players
// @Produce json
// @Param search query string false "Name search"
// @Param position query string false "Main position"
// @Param status query string false "active (default), inactive or all"
// @Success 200 {object} map[string][]model.Player
// @Router /players [get]
func (h *Handler) ListPlayers(c *gin.Context) {
	var filter model.PlayerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "invalid query")
		return
	}

	players, err := h.service.ListPlayers(c.Request.Context(), middleware.ScopeFrom(c), filter)
	if err != nil {
		if errors.Is(err, model.ErrInvalidStatus) {
			response.BadRequest(c, "status must be active, inactive or all")
			return
		}
		h.logger.Errorw("error listing players", "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": players})
}

// GetPlayer handles GET /players/:id.
func (h *Handler) GetPlayer(c *gin.Context) {
	player, err := h.service.GetPlayer(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			response.NotFound(c, MsgNotFound)
			return
		}
		h.logger.Errorw("error getting player", "player_id", c.Param("id"), "error", err)
		response.LoadFailed(c, err, MsgDetailFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": player})
}

// CreatePlayer handles POST /players.
// @Summary Create a player in the caller's club
// @Tags Players
// @Accept json
// @Produce json
// @Param request body model.CreatePlayerRequest true "Player form"
// @Success 201 {object} map[string]model.Player
// @Failure 400 {object} response.ErrorResponse
// @Router /players [post]
func (h *Handler) CreatePlayer(c *gin.Context) {
	var req model.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	player, err := h.service.CreatePlayer(c.Request.Context(), middleware.ScopeFrom(c), &req)
	if err != nil {
		h.logger.Errorw("error creating player", "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"player": player})
}

// UpdatePlayer handles PATCH /players/:id.
func (h *Handler) UpdatePlayer(c *gin.Context) {
	var req model.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	player, err := h.service.UpdatePlayer(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyUpdate) {
			response.BadRequest(c, "no fields to update")
			return
		}
		h.logger.Errorw("error updating player", "player_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": player})
}

// DeactivatePlayer handles POST /players/:id/deactivate.
func (h *Handler) DeactivatePlayer(c *gin.Context) {
	if err := h.service.DeactivatePlayer(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id")); err != nil {
		h.logger.Errorw("error deactivating player", "player_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}

	c.Status(http.StatusNoContent)
}
