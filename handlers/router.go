package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API routes onto the engine. Everything lives under
// /api; authRequired guards the per-user resources while registration, login
// and the liveness probe stay open.
func RegisterRoutes(
	r *gin.Engine,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	timelineHandler *TimelineHandler,
	chatHandler *ChatHandler,
	exportHandler *ExportHandler,
	authRequired gin.HandlerFunc,
) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	})

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(authRequired)
	{
		protected.POST("/health/profile", profileHandler.Upsert)
		protected.GET("/health/profile", profileHandler.Get)

		protected.POST("/timeline/entry", timelineHandler.Create)
		protected.GET("/timeline/entries", timelineHandler.List)

		protected.POST("/chat/message", chatHandler.Send)
		protected.GET("/chat/history", chatHandler.History)

		protected.POST("/export", exportHandler.Create)
		protected.GET("/export/:id", exportHandler.Download)
	}
}
