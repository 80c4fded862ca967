package main

import (
	"log"

	"acututor/config"
	"acututor/handlers"
	"acututor/middleware"
	"acututor/models"
	"acututor/repository"
	"acututor/routes"
	"acututor/services"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.ActivityEntry{},
		&models.Question{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	sessionStore := services.NewRedisSessionStore(redisClient)
	quizService := services.NewQuizService(questionRepo, userRepo, sessionStore)
	generator := services.NewHuggingFaceClient(cfg.HFEndpoint, cfg.HFModel, cfg.HFAPIKey)
	aiService := services.NewAIService(generator)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	router.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(router, authHandler, quizHandler, aiHandler, authService, aiService, redisClient, cfg.AIRatePerHour)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
