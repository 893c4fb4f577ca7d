package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yonchee/conduit-api/internal/auth"
	"github.com/yonchee/conduit-api/internal/config"
	"github.com/yonchee/conduit-api/internal/database"
	"github.com/yonchee/conduit-api/internal/handlers"
	"github.com/yonchee/conduit-api/internal/logger"
	"github.com/yonchee/conduit-api/internal/middleware"
	"github.com/yonchee/conduit-api/internal/repository"
	"github.com/yonchee/conduit-api/internal/services"
)

func main() {
	logger.Init()

	// Load configuration. A missing JWT_SECRET is fatal here, never a
	// per-request surprise later.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Token codec is built once from config; nothing reads the secret ad hoc.
	codec := auth.NewTokenCodec(cfg.JWTSecret)

	// Repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	articleRepo := repository.NewArticleRepository(database.GetDB())
	commentRepo := repository.NewCommentRepository(database.GetDB())

	userService := services.NewUserService(userRepo, codec)
	articleService := services.NewArticleService(articleRepo, commentRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(articleService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Conduit API is running",
		})
	})

	requireAuth := middleware.RequireAuth(codec)

	// API routes
	api := r.Group("/api")
	{
		// Identity routes
		api.POST("/users", authHandler.Signup)
		api.POST("/users/login", authHandler.Login)
		api.GET("/user", requireAuth, authHandler.GetCurrentUser)
		api.PUT("/user", requireAuth, authHandler.UpdateUser)

		// Profile routes (public)
		api.GET("/profiles/:username", authHandler.GetProfile)

		// Article routes
		articles := api.Group("/articles")
		{
			articles.POST("", requireAuth, articleHandler.CreateArticle)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.PUT("/:slug", requireAuth, articleHandler.UpdateArticle)
			articles.DELETE("/:slug", requireAuth, articleHandler.DeleteArticle)

			// Comment routes
			articles.POST("/:slug/comments", requireAuth, commentHandler.AddComment)
			articles.GET("/:slug/comments", commentHandler.GetComments)
			articles.DELETE("/:slug/comments/:id", requireAuth, commentHandler.DeleteComment)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
