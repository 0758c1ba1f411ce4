package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenmarket-backend/internal/shared/middleware"
	"greenmarket-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupProductRoutes(v1, c)
		setupVerificationRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// =====================================================
// AUTH ROUTES
// =====================================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// =====================================================
// USER ROUTES
// =====================================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.GetProfile)
	}
}

// =====================================================
// PRODUCT ROUTES
// =====================================================
func setupProductRoutes(v1 *gin.RouterGroup, c *container.Container) {
	products := v1.Group("/products")
	{
		// Public catalog
		products.GET("", c.ProductHandler.ListProducts)
		products.GET("/slug/:slug", c.ProductHandler.GetProductBySlug)
		products.GET("/:product_id", c.ProductHandler.GetProduct)

		// Verification history of a product is public; buyers use it
		// to judge certification claims
		products.GET("/:product_id/verifications", c.VerificationHandler.GetProductVerifications)

		// Seller-only listing management
		sellerOnly := products.Group("")
		sellerOnly.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireSeller())
		{
			sellerOnly.POST("", c.ProductHandler.CreateProduct)
			sellerOnly.PUT("/:product_id", c.ProductHandler.UpdateProduct)
		}
	}
}

// =====================================================
// VERIFICATION ROUTES
// =====================================================
func setupVerificationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	verifications := v1.Group("/verifications")
	verifications.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireSeller())
	{
		verifications.POST("", c.VerificationHandler.SubmitForVerification)
	}
}

// =====================================================
// ADMIN ROUTES
// =====================================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.RequireAdmin())
	{
		admin.PUT("/verifications/:id/review", c.VerificationHandler.ReviewVerification)
		admin.GET("/verifications/pending", c.VerificationHandler.ListPendingVerifications)
		admin.GET("/verifications/stats", c.VerificationHandler.GetStatistics)

		admin.PUT("/users/:id/role", c.UserHandler.UpdateUserRole)
	}
}

// =====================================================
// HEALTH CHECK
// =====================================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "healthy"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "unhealthy"
		}

		cacheStatus := "healthy"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unhealthy"
		}

		status := http.StatusOK
		if dbStatus != "healthy" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
