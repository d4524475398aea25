package main

import (
	"os"
	"strings"
	"time"

	"ai_unk_go_backend/cmd/api/config"
	"ai_unk_go_backend/internal/api"
	"ai_unk_go_backend/internal/auth"
	"ai_unk_go_backend/internal/database"
	"ai_unk_go_backend/internal/llm"
	"ai_unk_go_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_PRETTY") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfg := config.Load()

	database.InitDB()

	llmFactory := llm.NewClientFactory(cfg.DefaultProvider, cfg.DefaultModel, cfg.DefaultAPIKey)

	// Internal services
	conversationStore := services.NewConversationServiceDB(database.DB)
	auditService := services.NewAuditService(database.DB)
	providerRegistry := services.NewProviderRegistry(database.DB, auditService, llmFactory, cfg.ProbeTimeout)
	conversationService := services.NewConversationService(conversationStore, auditService)
	chatService := services.NewChatService(conversationStore, providerRegistry, auditService, llmFactory)
	progressService := services.NewProgressService(database.DB)
	userService := services.NewUserService(database.DB, cfg.OwnerOpenID)

	r := gin.Default()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:5173" // Default to your local frontend
	}

	// CORS middleware configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r, chatService, conversationService, progressService, providerRegistry, auditService, userService, cfg.ChatTimeout)
	auth.SetupRoutes(r, userService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
