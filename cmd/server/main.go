package main

import (
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/greapevine/collaborator-finder/internal/config"
	"github.com/greapevine/collaborator-finder/internal/constants"
	"github.com/greapevine/collaborator-finder/internal/database"
	"github.com/greapevine/collaborator-finder/internal/handlers"
	"github.com/greapevine/collaborator-finder/internal/logger"
	"github.com/greapevine/collaborator-finder/internal/middleware"
	"github.com/greapevine/collaborator-finder/internal/repository"
	"github.com/greapevine/collaborator-finder/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	// The skill catalog is reference data; it must exist before any request
	// is served.
	if err := database.SeedSkills(database.GetDB()); err != nil {
		logger.Fatalf("Failed to seed skill catalog: %v", err)
	}

	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logger.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	interestRepo := repository.NewInterestRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	skillService := services.NewSkillService(skillRepo)
	projectService := services.NewProjectService(projectRepo, userRepo)
	interestService := services.NewInterestService(interestRepo, projectRepo)
	statsService := services.NewStatsService(projectRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, skillService)
	skillHandler := handlers.NewSkillHandler(skillService)
	projectHandler := handlers.NewProjectHandler(projectService)
	interestHandler := handlers.NewInterestHandler(interestService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Collaborator Finder API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Skill routes (protected)
		skills := api.Group("/skills")
		skills.Use(middleware.RequireAuth())
		{
			skills.POST("", skillHandler.AddSkill)
			skills.DELETE("/:name", skillHandler.RemoveSkill)
		}

		// Project routes: listing and detail are public, everything else is
		// protected; owner-only routes additionally pass RequireProjectOwner.
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/open", projectHandler.ListOpenProjects)
			projects.GET("/:id", projectHandler.GetProject)

			authed := projects.Group("")
			authed.Use(middleware.RequireAuth())
			{
				authed.POST("", projectHandler.CreateProject)
				authed.POST("/:id/interest", interestHandler.ExpressInterest)
				authed.POST("/:id/complete", middleware.RequireProjectOwner(), projectHandler.CompleteProject)
				authed.DELETE("/:id", middleware.RequireProjectOwner(), projectHandler.DeleteProject)
				authed.GET("/:id/interests/pending", middleware.RequireProjectOwner(), interestHandler.ListPendingInterests)
				authed.POST("/:id/interests/:interest_id/accept", middleware.RequireProjectOwner(), interestHandler.AcceptInterest)
				authed.POST("/:id/interests/:interest_id/decline", middleware.RequireProjectOwner(), interestHandler.DeclineInterest)
			}
		}

		// Statistics (protected)
		api.GET("/stats", middleware.RequireAuth(), statsHandler.GetStats)
	}

	logger.Infof("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
