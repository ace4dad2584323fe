package search

import (
	"github.com/gin-gonic/gin"
)

// registers product search routes
func RegisterRoutes(router *gin.RouterGroup, searcher ProductSearcher) {
	router.POST("/search", Handler(searcher))
}
