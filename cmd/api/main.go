package main

import (
	"os"
	"time"

	"contentflow_go_backend/cmd/api/config"
	"contentflow_go_backend/internal/api"
	"contentflow_go_backend/internal/auth"
	"contentflow_go_backend/internal/catalog"
	"contentflow_go_backend/internal/database"
	"contentflow_go_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg := config.NewConfig()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to initialize database")
	}

	// Internal services
	templateCatalog := catalog.New()
	generatorService := services.NewGeneratorService(templateCatalog)
	quotaService := services.NewQuotaService(db)
	contentService := services.NewContentService(db, generatorService, quotaService)
	historyService := services.NewHistoryService(db)
	userService := services.NewUserService(db)

	tokenIssuer := auth.NewTokenIssuer(cfg.SecretKey, cfg.TokenTTL)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	auth.SetupRoutes(r, tokenIssuer, userService)
	api.SetupRoutes(r, tokenIssuer, contentService, historyService, userService)
	api.SetupStatic(r, cfg.StaticDir)

	log.Info().Str("port", cfg.Port).Msg("Starting ContentFlow AI")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
