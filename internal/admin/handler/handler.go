package handler

import (
	"net/http"
	"strconv"

	"guild-bot/internal/apierrors"
	authHandler "guild-bot/internal/auth/handler"
	"guild-bot/internal/observability"
	"guild-bot/internal/router"
	"guild-bot/internal/state"

	"github.com/gin-gonic/gin"
)

const defaultLeaderboardLimit = 10

type Handler struct {
	stats  StatsReader
	codes  CodeLister
	loop   EventLoop
	logger *observability.Logger
}

func New(stats StatsReader, codes CodeLister, loop EventLoop, logger *observability.Logger) Handler {
	return Handler{
		stats:  stats,
		codes:  codes,
		loop:   loop,
		logger: logger,
	}
}

// AdjustRequest represents the HTTP request for overriding an invite counter
type AdjustRequest struct {
	Counter string `json:"counter" binding:"required,oneof=valid leaves suspect bonus"`
	Op      string `json:"op" binding:"required,oneof=add subtract set clear"`
	Amount  int    `json:"amount" binding:"gte=0"`
}

// HandleGetInvites returns the counters of one inviter
func (h *Handler) HandleGetInvites(c *gin.Context) {
	ctx := c.Request.Context()
	guildID, userID := c.Param("guild_id"), c.Param("user_id")

	stats := h.stats.Stats(ctx, guildID, userID)
	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
		"total": stats.Total(),
	})
}

// HandleLeaderboard returns the top inviters of a guild
func (h *Handler) HandleLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	limit := defaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			apierrors.BadRequest(c, apierrors.CodeInvalidLimit, "limit must be a positive integer")
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": h.stats.Leaderboard(ctx, c.Param("guild_id"), limit)})
}

// HandleSuspects lists recently created accounts attributed to an inviter
func (h *Handler) HandleSuspects(c *gin.Context) {
	ctx := c.Request.Context()
	suspects := h.stats.SuspectReport(ctx, c.Param("guild_id"), c.Param("user_id"))
	c.JSON(http.StatusOK, gin.H{"suspects": suspects})
}

// HandleAdjust applies a counter override through the event loop so it is ordered
// with gateway events.
func (h *Handler) HandleAdjust(c *gin.Context) {
	ctx := c.Request.Context()
	guildID, userID := c.Param("guild_id"), c.Param("user_id")

	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "guild_id", Value: guildID},
		observability.Field{Key: "inviter_id", Value: userID},
		observability.Field{Key: "operator_id", Value: c.GetString(authHandler.OperatorKey)},
	)

	reply, err := h.loop.Do(ctx, router.AdjustInvitesCommand{
		Actor:    router.Actor{GuildID: guildID, UserID: c.GetString(authHandler.OperatorKey), IsStaff: true},
		TargetID: userID,
		Counter:  state.CounterKind(req.Counter),
		Op:       req.Op,
		Amount:   req.Amount,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.logger.Info(ctx, "counter adjusted through admin api")

	stats := h.stats.Stats(ctx, guildID, userID)
	c.JSON(http.StatusOK, gin.H{
		"message": reply.Content,
		"stats":   stats,
		"total":   stats.Total(),
	})
}

// HandleListCodes lists the active codes owned by a member
func (h *Handler) HandleListCodes(c *gin.Context) {
	ctx := c.Request.Context()
	codes := h.codes.ListCodes(ctx, c.Param("user_id"))
	if codes == nil {
		codes = []state.RewardCode{}
	}
	c.JSON(http.StatusOK, gin.H{"codes": codes})
}
