// Package handler provides HTTP handlers for roster endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/service"
)

// Messages shown by the roster manager.
const (
	MsgLoadFailed   = "Error al cargar datos"
	MsgAddFailed    = "Error al añadir jugadora. Verifica que no esté ya en el equipo."
	MsgRemoveFailed = "Error al quitar jugadora"
	MsgUpdateFailed = "Error al actualizar datos"
	MsgTeamNotFound = "Equipo no encontrado"
	MsgNotOnRoster  = "La jugadora no está en la plantilla"
)

// CodeCouldNotAdd is returned when a roster addition fails.
const CodeCouldNotAdd = "COULD_NOT_ADD"

// Handler handles HTTP requests for roster endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new roster handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetRoster handles GET /teams/:id/roster?season_id=.
func (h *Handler) GetRoster(c *gin.Context) {
	entries, err := h.service.Roster(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), c.Query("season_id"))
	if err != nil {
		if errors.Is(err, model.ErrSeasonRequired) {
			response.BadRequest(c, "season_id parameter is required")
			return
		}
		if errors.Is(err, model.ErrTeamNotFound) {
			response.NotFound(c, MsgTeamNotFound)
			return
		}
		h.logger.Errorw("error loading roster", "team_id", c.Param("id"), "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roster": entries})
}

// AvailablePlayers handles GET /teams/:id/roster/available?season_id=.
func (h *Handler) AvailablePlayers(c *gin.Context) {
	players, err := h.service.AvailablePlayers(
		c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), c.Query("season_id"),
	)
	if err != nil {
		if errors.Is(err, model.ErrSeasonRequired) {
			response.BadRequest(c, "season_id parameter is required")
			return
		}
		if errors.Is(err, model.ErrTeamNotFound) {
			response.NotFound(c, MsgTeamNotFound)
			return
		}
		h.logger.Errorw("error loading available players", "team_id", c.Param("id"), "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// AddPlayer handles POST /teams/:id/roster and returns the reloaded roster.
func (h *Handler) AddPlayer(c *gin.Context) {
	var req model.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "player_id and season_id are required")
		return
	}

	entries, err := h.service.AddPlayer(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), &req)
	if err != nil {
		h.logger.Errorw("error adding player to roster",
			"team_id", c.Param("id"),
			"player_id", req.PlayerID,
			"error", err,
		)
		switch {
		case errors.Is(err, model.ErrTeamNotFound):
			response.NotFound(c, MsgTeamNotFound)
			return
		case errors.Is(err, model.ErrCouldNotAdd):
			response.Conflict(c, err, CodeCouldNotAdd, MsgAddFailed)
			return
		}
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"roster": entries})
}

// UpdateEntry handles PATCH /roster/:id.
func (h *Handler) UpdateEntry(c *gin.Context) {
	var req model.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	entry, err := h.service.UpdateEntry(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyUpdate) {
			response.BadRequest(c, "no fields to update")
			return
		}
		if errors.Is(err, model.ErrEntryNotFound) {
			response.NotFound(c, MsgNotOnRoster)
			return
		}
		h.logger.Errorw("error updating roster entry", "entry_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// RemoveEntry handles DELETE /roster/:id.
func (h *Handler) RemoveEntry(c *gin.Context) {
	if err := h.service.RemoveEntry(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id")); err != nil {
		if errors.Is(err, model.ErrEntryNotFound) {
			response.NotFound(c, MsgNotOnRoster)
			return
		}
		h.logger.Errorw("error removing roster entry", "entry_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgRemoveFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
