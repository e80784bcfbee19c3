package routes

import (
	"github.com/gin-gonic/gin"

	"go-lifelink/handlers"
	"go-lifelink/session"
)

func SetupRouter(manager *session.Manager) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":   "healthy",
			"sessions": manager.Count(),
		})
	})

	// api routes
	api := r.Group("/api/lifelink")
	{
		api.POST("/sessions", func(c *gin.Context) { handlers.CreateSession(c, manager) })
		api.GET("/sessions/:sessionId", func(c *gin.Context) { handlers.GetSnapshot(c, manager) })
		api.DELETE("/sessions/:sessionId", func(c *gin.Context) { handlers.CloseSession(c, manager) })

		api.POST("/sessions/:sessionId/blood-type", func(c *gin.Context) { handlers.SelectBloodType(c, manager) })
		api.POST("/sessions/:sessionId/sort-key", func(c *gin.Context) { handlers.SelectSortKey(c, manager) })
		api.POST("/sessions/:sessionId/search", func(c *gin.Context) { handlers.TriggerSearch(c, manager) })
		api.POST("/sessions/:sessionId/alert", func(c *gin.Context) { handlers.RefreshAlert(c, manager) })
		api.POST("/sessions/:sessionId/chat", func(c *gin.Context) { handlers.SubmitChat(c, manager) })
		api.POST("/sessions/:sessionId/chat/toggle", func(c *gin.Context) { handlers.ToggleChat(c, manager) })
		api.POST("/sessions/:sessionId/role", func(c *gin.Context) { handlers.SelectRole(c, manager) })
		api.GET("/sessions/:sessionId/map-commands", func(c *gin.Context) { handlers.MapCommands(c, manager) })

		api.POST("/dispatch/find-best-donor", handlers.FindBestDonor)
		api.POST("/donor/analyze", handlers.AnalyzeDonor)
	}

	return r
}
