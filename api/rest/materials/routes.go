package materials

import (
	"github.com/gin-gonic/gin"
)

// registers material matching routes
func RegisterRoutes(router *gin.RouterGroup, searcher MaterialSearcher) {
	router.POST("/materials/search", Handler(searcher))
}
