package main

import (
	"log/slog"
	"net/http"
	"os"

	"bistro-boss-api/auth"
	"bistro-boss-api/cache"
	"bistro-boss-api/config"
	"bistro-boss-api/gateway"
	"bistro-boss-api/handlers"
	"bistro-boss-api/logging"
	"bistro-boss-api/metrics"
	"bistro-boss-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	stripe := gateway.NewStripeClient(cfg.StripeSecretKey)

	var menuCache *cache.Cache
	if cfg.RedisAddr != "" {
		menuCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
			menuCache = nil
		}
	}

	h := handlers.New(db, tokens, stripe, menuCache)

	r := gin.Default()
	r.Use(metrics.Middleware())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Bistro Boss API",
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Bistro Boss is running"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.SetupRoutes(r, h)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
