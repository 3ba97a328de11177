// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/handlers"
	"github.com/javajoker/shopsmart-backend/internal/middleware"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	searchService := services.NewSearchService(db)
	interactionService := services.NewInteractionService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	searchHandler := handlers.NewSearchHandler(searchService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/popular", productHandler.GetPopularProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/categories/list", productHandler.GetCategories)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
			products.GET("/:id/similar", middleware.OptionalAuth(), productHandler.GetSimilarProducts)
		}

		// Search routes
		search := v1.Group("/search")
		{
			search.POST("", middleware.OptionalAuth(), searchHandler.Search)
			search.GET("/history", middleware.AuthRequired(), searchHandler.GetHistory)
			search.GET("/suggestions", searchHandler.GetSuggestions)
		}

		// Interaction routes
		interactions := v1.Group("/interactions")
		interactions.Use(middleware.AuthRequired())
		{
			interactions.POST("", interactionHandler.CreateInteraction)
			interactions.GET("/history", interactionHandler.GetHistory)
			interactions.GET("/stats", interactionHandler.GetStats)
		}
	}

	return r
}
