package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/parleyhq/parley/internal/api/handlers"
)

type Deps struct {
	Conversation *handlers.ConversationHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/generate", d.Conversation.Generate)
	r.GET("/history", d.Conversation.History)
}
