// Package handler provides HTTP handlers for login, logout and the current
// client's session.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/auth/model"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/middleware"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/session"
)

// CodeLoginFailed is returned when sign-in or the profile fetch fails.
const CodeLoginFailed = "LOGIN_FAILED"

// LoginRecorder counts login attempts.
type LoginRecorder interface {
	RecordLogin(success bool)
}

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	logins LoginRecorder
	logger *zap.SugaredLogger
}

// New creates a new auth handler instance. logins may be nil.
func New(logins LoginRecorder, logger *zap.SugaredLogger) *Handler {
	return &Handler{logins: logins, logger: logger}
}

// Login handles POST /auth/login.
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Credentials"
// @Success 200 {object} model.MeResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	st := h.state(c)
	if st == nil {
		return
	}

	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debugw("invalid login request", "error", err)
		response.BadRequest(c, "email and password are required")
		return
	}

	view := st.Login(c.Request.Context(), req.Email, req.Password)
	if h.logins != nil {
		h.logins.RecordLogin(view.IsAuthenticated)
	}

	if !view.IsAuthenticated {
		msg := session.MsgLoginFailed
		if view.Error != nil {
			msg = *view.Error
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": response.ErrorBody{Code: CodeLoginFailed, Message: msg},
			"state": view,
		})
		return
	}

	c.JSON(http.StatusOK, model.NewMeResponse(view))
}

// Logout handles POST /auth/logout. It always succeeds locally.
func (h *Handler) Logout(c *gin.Context) {
	st := h.state(c)
	if st == nil {
		return
	}

	view := st.Logout(c.Request.Context())
	c.JSON(http.StatusOK, model.NewMeResponse(view))
}

// Me handles GET /auth/me.
func (h *Handler) Me(c *gin.Context) {
	st := h.state(c)
	if st == nil {
		return
	}

	c.JSON(http.StatusOK, model.NewMeResponse(st.View()))
}

func (h *Handler) state(c *gin.Context) *session.State {
	st := middleware.StateFrom(c)
	if st == nil {
		h.logger.Errorw("session state missing from request", "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Error interno del servidor")
	}
	return st
}
