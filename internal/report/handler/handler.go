// Package handler provides HTTP handlers for report endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	playerModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/report/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
)

// Messages shown by the reports panel.
const (
	MsgLoadFailed = "Error al cargar los informes."
	MsgSaveFailed = "Error al guardar el informe."
	MsgNoPlayer   = "Jugadora no encontrada"
)

// Handler handles HTTP requests for report endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new report handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListReports handles GET /players/:id/reports.
func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"))
	if err != nil {
		h.logger.Errorw("error listing reports", "player_id", c.Param("id"), "error", err)
		response.LoadFailed(c, err, MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// CreateReport handles POST /players/:id/reports. The author is the
// signed-in user.
func (h *Handler) CreateReport(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "title and content are required; date must be YYYY-MM-DD")
		return
	}

	var authorID string
	if p := middleware.ProfileFrom(c); p != nil {
		authorID = p.ID
	}

	report, err := h.service.CreateReport(c.Request.Context(), middleware.ScopeFrom(c), authorID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyReport) {
			response.BadRequest(c, "title and content are required")
			return
		}
		if errors.Is(err, playerModel.ErrPlayerNotFound) {
			response.NotFound(c, MsgNoPlayer)
			return
		}
		h.logger.Errorw("error creating report", "player_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"report": report})
}

// UpdateReport handles PATCH /reports/:id.
func (h *Handler) UpdateReport(c *gin.Context) {
	var req model.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	report, err := h.service.UpdateReport(c.Request.Context(), middleware.ScopeFrom(c), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmptyUpdate) || errors.Is(err, model.ErrEmptyReport) {
			response.BadRequest(c, err.Error())
			return
		}
		h.logger.Errorw("error updating report", "report_id", c.Param("id"), "error", err)
		response.SaveFailed(c, err, MsgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}
