package routes

import (
	"batepapo/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(h *handlers.Handler) *gin.Engine {
	router := gin.Default()

	// Open CORS: the room is served to browser clients on any origin.
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	router.POST("/participants", h.CreateParticipant)
	router.GET("/participants", h.ListParticipants)

	router.POST("/messages", h.CreateMessage)
	router.GET("/messages", h.ListMessages)

	router.POST("/status", h.UpdateStatus)

	return router
}
