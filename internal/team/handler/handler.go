// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
	seasonModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/team/service"
)

// Messages shown by the teams screen.
const (
	MsgLoadFailed      = "Error al cargar datos"
	MsgSaveFailed      = "Error al guardar equipo"
	MsgDeleteFailed    = "Error al eliminar equipo"
	MsgNoCurrentSeason = "No hay ninguna temporada actual configurada para este club."
	MsgSeasonNotFound  = "Temporada no encontrada"
)

// CodeNoCurrentSeason is returned when a team needs a current season.
const CodeNoCurrentSeason = "NO_CURRENT_SEASON"

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListTeams handles GET /teams request.
// @Summary List the teams of a season
// @Tags Teams
// @Produce json
// @Param season_id query string false "Season, defaults to the current one"
// @Success 200 {object} model.TeamsResponse
// @Failure 502 {object} response.ErrorResponse "Store failure"
// @Router /teams [get]
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context(), middleware.ScopeFrom(c), c.Query("season_id"))
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTeam handles POST /teams request.
// @Summary Create a team
// @Tags Teams
// @Accept json
// @Produce json
// @Param request body model.CreateTeamRequest true "Team form"
// @Success 201 {object} map[string]model.Team
// @Failure 400 {object} response.ErrorResponse "INVALID_REQUEST"
// @Failure 404 {object} response.ErrorResponse "NOT_FOUND"
// @Failure 409 {object} response.ErrorResponse "NO_CURRENT_SEASON"
// @Router /teams [post]
func (h *Handler) CreateTeam(c *gin.Context) {
	var req model.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), middleware.ScopeFrom(c), &req)
	if err != nil {
		if errors.Is(err, model.ErrNoCurrentSeason) {
			response.Error(c, http.StatusConflict, CodeNoCurrentSeason, MsgNoCurrentSeason)
			return
		}
		if errors.Is(err, seasonModel.ErrSeasonNotFound) {
			response.NotFound(c, MsgSeasonNotFound)
			return
		}
		h.logger.Errorw("error creating team", "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// UpdateTeam handles PATCH /teams/:id request.
func (h *Handler) UpdateTeam(c *gin.Context) {
	var req model.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	team, err := h.service.UpdateTeam(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyUpdate) {
			response.BadRequest(c, "no fields to update")
			return
		}
		h.logger.Errorw("error updating team", "team_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

// DeleteTeam handles DELETE /teams/:id request.
func (h *Handler) DeleteTeam(c *gin.Context) {
	if err := h.service.DeleteTeam(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id")); err != nil {
		h.logger.Errorw("error deleting team", "team_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}
