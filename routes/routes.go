package routes

import (
	"log"
	"net/http"

	"acututor/handlers"
	"acututor/middleware"
	"acututor/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

func SetupRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	aiHandler *handlers.AIHandler,
	authService *services.AuthService,
	aiService *services.AIService,
	redisClient *redis.Client,
	aiRatePerHour int,
) {
	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/signup", authHandler.Register) // legacy alias
			auth.POST("/login", authHandler.Login)
		}

		// Topic/difficulty enumerations (public, the landing page needs them)
		api.GET("/quiz/topics", quizHandler.Topics)

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.Auth(authService))
		{
			protected.GET("/auth/me", authHandler.Me)
			protected.GET("/user/me", authHandler.Me) // legacy alias

			quiz := protected.Group("/quiz")
			{
				quiz.POST("/create", quizHandler.CreateSession)
				quiz.POST("/submit", quizHandler.SubmitSession)
			}

			ai := protected.Group("/ai")
			ai.Use(middleware.AIRateLimit(redisClient, aiRatePerHour))
			{
				ai.POST("/chatbot", aiHandler.Chatbot)
				ai.POST("/explain", aiHandler.Explain)
			}
		}
	}

	// WebSocket endpoint for the live tutor chat panel. The token travels as
	// a query parameter because browsers can't set headers on ws dials.
	router.GET("/ws/chat", func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		userID, err := authService.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("WebSocket upgrade failed for user %d: %v", userID, err)
			return
		}
		defer conn.Close()
		log.Printf("Tutor chat connected for user %d", userID)

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("Tutor chat closed for user %d: %v", userID, err)
				return
			}

			reply, err := aiService.Chat(c.Request.Context(), string(message))
			if err != nil {
				log.Printf("Tutor chat generation failed for user %d: %v", userID, err)
				if err := conn.WriteJSON(gin.H{"type": "error", "message": "AI service unavailable"}); err != nil {
					return
				}
				continue
			}

			if err := conn.WriteJSON(gin.H{"type": "reply", "message": reply}); err != nil {
				return
			}
		}
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
