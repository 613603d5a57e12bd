// Package response writes the JSON error envelope shared by every module.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

// Error codes.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeNoClub          = "NO_CLUB"
	CodeNotFound        = "NOT_FOUND"
	CodeStoreError      = "STORE_ERROR"
	CodeInternal        = "INTERNAL_ERROR"
)

// MsgNoClub is shown to users without a club.
const MsgNoClub = "Tu usuario no tiene un club asignado. Contacta con el administrador."

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error details. Retry tells the client whether the
// failed action can be retried from a banner (list loads) or needs the user
// to resubmit a form.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Retry   bool   `json:"retry"`
}

// Error writes an error response and aborts the chain.
func Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// BadRequest writes a 400 INVALID_REQUEST response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeInvalidRequest, message)
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict reports a write refused by a data rule the user can act on,
// such as a duplicate. The cause is attached to the context for the
// request logger.
func Conflict(c *gin.Context, err error, code, message string) {
	_ = c.Error(err)
	Error(c, http.StatusConflict, code, message)
}

// LoadFailed reports a failed list or detail load. The provider message is
// exposed as detail so the banner can show it.
func LoadFailed(c *gin.Context, err error, message string) {
	storeFailure(c, err, message, true)
}

// SaveFailed reports a failed form submission.
func SaveFailed(c *gin.Context, err error, message string) {
	storeFailure(c, err, message, false)
}

func storeFailure(c *gin.Context, err error, message string, retry bool) {
	_ = c.Error(err)
	if errors.Is(err, policy.ErrNoScope) {
		Error(c, http.StatusForbidden, CodeNoClub, MsgNoClub)
		return
	}
	var access *store.AccessError
	if !errors.As(err, &access) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorBody{Code: CodeInternal, Message: message, Retry: retry},
		})
		return
	}
	status := http.StatusBadGateway
	switch {
	case store.IsNoRows(err):
		status = http.StatusNotFound
	case store.IsUniqueViolation(err), store.CodeOf(err) == store.CodeForeignKeyViolation:
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: ErrorBody{
		Code:    CodeStoreError,
		Message: message,
		Detail:  access.Error(),
		Retry:   retry,
	}})
}
