package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handshou/rainmap-go/internal/config"
	"github.com/handshou/rainmap-go/internal/handler"
	"github.com/handshou/rainmap-go/internal/middleware"
)

// SetupRouter wires middleware and handlers into a gin engine.
func SetupRouter(cfg *config.Config, rainfall *handler.RainfallHandler, heatmap *handler.HeatmapHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS: the map front-end is served from a different origin.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "rainmap API is running",
		})
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)

	api := r.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		rain := api.Group("/rainfall")
		{
			rain.GET("/latest", rainfall.GetLatest)
			rain.GET("/history", rainfall.GetHistory)
			rain.GET("/heatmap", heatmap.GetHeatmap)
			rain.POST("/readings", middleware.Auth(cfg.JWTSecret), rainfall.Ingest)
		}

		api.GET("/boundary", heatmap.GetBoundary)
	}

	return r
}
