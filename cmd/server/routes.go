package main

import (
	"time"

	"codeberg.org/voltshop/server/api/rest/chat"
	"codeberg.org/voltshop/server/api/rest/health"
	"codeberg.org/voltshop/server/api/rest/materials"
	"codeberg.org/voltshop/server/api/rest/search"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-client request budget for the retrieval endpoints; every request
// costs an embedding call upstream
const apiRateLimit = "60-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")
	v1.Use(rateLimitMiddleware())

	{
		v1.GET("/ping", health.PingHandler)

		search.RegisterRoutes(v1, server.services.Retriever)
		materials.RegisterRoutes(v1, server.services.Retriever)
		chat.RegisterRoutes(v1, server.services.Assistant)
	}
}

// per-IP rate limiting backed by an in-memory store
func rateLimitMiddleware() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(apiRateLimit)
	if err != nil {
		// the format string is a compile-time constant; this cannot happen
		panic(err)
	}

	return mgin.NewMiddleware(limiter.New(memorystore.NewStore(), rate))
}
