package handler

import (
	"strings"

	"guild-bot/internal/apierrors"
	"guild-bot/internal/auth/processor"
	"guild-bot/internal/observability"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the gin context key holding the authenticated operator id
const OperatorKey = "Operator-ID"

const bearerPrefix = "Bearer "

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware rejects admin API calls without a valid operator token.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(c.Request.Context(), strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		apierrors.Unauthorized(c, err.Error())
		return
	}

	ctx := observability.WithFields(c.Request.Context(), observability.Field{Key: "operator_id", Value: claims.Subject})
	c.Request = c.Request.WithContext(ctx)
	c.Set(OperatorKey, claims.Subject)
	c.Next()
}
