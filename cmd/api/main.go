package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fairmines/internal/config"
	"fairmines/internal/game"
	"fairmines/internal/handlers"
	"fairmines/internal/middleware"
	"fairmines/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := services.NewRedisStore(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	jwtService := services.NewJWTService(cfg)

	wsHandler := handlers.NewWebSocketHandler()

	engine := game.NewEngine(store, wsHandler, game.Limits{
		MinBet: cfg.MinBet,
		MaxBet: cfg.MaxBet,
	})

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			engine.CleanupStaleRounds(cfg.SessionTTL)
		}
	}()

	sessionHandler := handlers.NewSessionHandler(jwtService, store)
	gameHandler := handlers.NewGameHandler(engine, store)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.POST("/session", sessionHandler.CreateSession)

	protected := router.Group("/api")
	protected.Use(middleware.SessionMiddleware(jwtService))
	{
		protected.GET("/balance", gameHandler.GetBalance)
		protected.GET("/ws", wsHandler.HandleWebSocket)

		rounds := protected.Group("/rounds")
		{
			rounds.POST("", gameHandler.StartRound)
			rounds.GET("/current", gameHandler.CurrentRound)
			rounds.POST("/reveal", gameHandler.RevealTile)
			rounds.POST("/cashout", gameHandler.CashOut)
		}

		protected.POST("/verify", gameHandler.Verify)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
