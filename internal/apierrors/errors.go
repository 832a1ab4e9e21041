package apierrors

import (
	"net/http"

	"guild-bot/internal/observability"

	"github.com/gin-gonic/gin"
)

var logger = observability.NewLogger()

// Machine-readable error codes
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInvalidLimit   = "INVALID_LIMIT"
	CodeInvalidCounter = "INVALID_COUNTER"
	CodeInvalidOp      = "INVALID_OP"
	CodeInvalidAmount  = "INVALID_AMOUNT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeBotUnavailable = "BOT_UNAVAILABLE"
	CodeBotBusy        = "BOT_BUSY"
	CodeInternal       = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON structure returned to API clients
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// respond writes the error response and logs correlation info
func respond(c *gin.Context, statusCode int, code, message string) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: statusCode},
		observability.Field{Key: "error_code", Value: code},
	)
	logger.Info(ctx, "API error response")

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, code, message string) {
	respond(c, http.StatusBadRequest, code, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// ServiceUnavailable sends a 503 response and logs the cause
func ServiceUnavailable(c *gin.Context, code, message string, cause error) {
	logger.WarnWithError(c.Request.Context(), "service unavailable", cause)
	respond(c, http.StatusServiceUnavailable, code, message)
}

// InternalError sends a sanitized 500 response
func InternalError(c *gin.Context, internalErr error) {
	logger.Error(c.Request.Context(), "internal error", internalErr)
	respond(c, http.StatusInternalServerError, CodeInternal, "An internal error occurred. Please try again later.")
}
