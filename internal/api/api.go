package api

import (
	"net/http"

	adminHandler "guild-bot/internal/admin/handler"
	authHandler "guild-bot/internal/auth/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router       *gin.RouterGroup
	authHandler  authHandler.Handler
	adminHandler adminHandler.Handler
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler, adminHandler adminHandler.Handler) API {
	return API{
		router:       router,
		authHandler:  authHandler,
		adminHandler: adminHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api", a.authHandler.HandleJWTMiddleware)
	{
		guildGroup := apiGroup.Group("/guilds/:guild_id")
		guildGroup.GET("/leaderboard", a.adminHandler.HandleLeaderboard)
		guildGroup.GET("/invites/:user_id", a.adminHandler.HandleGetInvites)
		guildGroup.POST("/invites/:user_id/adjust", a.adminHandler.HandleAdjust)
		guildGroup.GET("/invites/:user_id/suspects", a.adminHandler.HandleSuspects)
	}
	apiGroup.GET("/users/:user_id/codes", a.adminHandler.HandleListCodes)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
