package apierrors

import (
	"context"
	"errors"

	admin "guild-bot/internal/admin/processor"
	"guild-bot/internal/workers"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps a domain or event loop error to a sanitized JSON response.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, workers.ErrShuttingDown), errors.Is(err, workers.ErrNotStarted):
		ServiceUnavailable(c, CodeBotUnavailable, "The bot is not accepting work right now", err)
	case errors.Is(err, context.DeadlineExceeded):
		ServiceUnavailable(c, CodeBotBusy, "The bot is busy, please retry", err)
	case errors.Is(err, admin.ErrInvalidCounter):
		BadRequest(c, CodeInvalidCounter, "counter must be one of valid, leaves, suspect, bonus")
	case errors.Is(err, admin.ErrInvalidOp):
		BadRequest(c, CodeInvalidOp, "op must be one of add, subtract, set, clear")
	case errors.Is(err, admin.ErrNegativeAmount):
		BadRequest(c, CodeInvalidAmount, "amount must not be negative")
	case errors.Is(err, admin.ErrMissingInviter):
		BadRequest(c, CodeInvalidInput, "user id is required")
	default:
		InternalError(c, err)
	}
}
