package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/response"
)

// Recovery turns a panic in a handler into a 500 error envelope.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorw("panic recovered",
					"error", rec,
					"method", c.Request.Method,
					"route", c.FullPath(),
					"client_id", c.GetString(clientIDKey),
					"stack", string(debug.Stack()),
				)
				response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Error interno del servidor")
			}
		}()

		c.Next()
	}
}
