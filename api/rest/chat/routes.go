package chat

import (
	"github.com/gin-gonic/gin"
)

// registers chat routes
func RegisterRoutes(router *gin.RouterGroup, chatter Chatter) {
	router.POST("/chat", Handler(chatter))
}
