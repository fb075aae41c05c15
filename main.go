package main

import (
	"time"

	"daily-diet-be/internal/cache"
	"daily-diet-be/internal/config"
	"daily-diet-be/internal/controllers"
	"daily-diet-be/internal/database"
	"daily-diet-be/internal/jwt"
	"daily-diet-be/internal/logger"
	"daily-diet-be/internal/middleware"
	"daily-diet-be/internal/repository"
	"daily-diet-be/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close() // Close connection when program exits

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
			cacheClient = nil
		} else {
			log.Info("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	mealRepo := repository.NewMealRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.SecretKey,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	mealService := service.NewMealService(mealRepo, cacheClient, log)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	mealController := controllers.NewMealController(mealService)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// User routes - no auth required
	users := router.Group("/users")
	{
		users.POST("", authController.Register)
		users.POST("/login", authController.Login)
	}

	// Meal routes - require a valid bearer token
	meals := router.Group("/meals")
	meals.Use(middleware.AuthMiddleware(jwtService, userRepo))
	{
		meals.GET("", mealController.ListMeals)
		meals.GET("/summary", mealController.Summary)
		meals.GET("/summary/diet", mealController.DietSummary)
		meals.GET("/summary/not-diet", mealController.NotDietSummary)
		meals.GET("/best-sequenci-diet", mealController.BestDietDay)
		meals.GET("/:id", mealController.GetMeal)
		meals.POST("", mealController.CreateMeal)
		meals.PUT("/:id", mealController.UpdateMeal)
		meals.DELETE("/:id", mealController.DeleteMeal)
	}

	log.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
