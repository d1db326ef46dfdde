package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pitlane-backend-go/internal/core"
	"pitlane-backend-go/internal/middleware"
	"pitlane-backend-go/internal/models"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Users    core.UserService
	Tokens   core.TokenService
	Products core.ProductService
	Carts    core.CartService
	Orders   core.OrderService
	Payments core.PaymentService
}

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS, security headers) is applied to the router
// in main before this is called.
func SetupRoutes(router *gin.Engine, logger *zap.Logger, releaseMode bool, svc Services) {
	RegisterValidators()

	authMW := middleware.NewAuthMiddleware(svc.Tokens, svc.Users, logger)

	authHandler := NewAuthHandler(svc.Users, svc.Tokens)
	productHandler := NewProductHandler(svc.Products)
	cartHandler := NewCartHandler(svc.Carts)
	orderHandler := NewOrderHandler(svc.Orders)
	paymentHandler := NewPaymentHandler(svc.Payments)

	// Fixed-window limiters per client IP. The auth limiter counts only
	// failed attempts; the create limiter guards resource creation.
	generalLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Limit:   100,
		Window:  15 * time.Minute,
		Message: "Too many requests from this IP, please try again later.",
	})
	authLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Limit:          5,
		Window:         15 * time.Minute,
		Message:        "Too many login attempts, please try again later.",
		SkipSuccessful: true,
	})
	createLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Limit:   10,
		Window:  time.Hour,
		Message: "Too many create requests, please try again later.",
	})

	apiGroup := router.Group("/api", generalLimiter.Handler(), ErrorHandler(logger, releaseMode))
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", createLimiter.Handler(), authHandler.Register)
			authGroup.POST("/login", authLimiter.Handler(), authHandler.Login)
			authGroup.GET("/me", authMW.RequireAuth(), authHandler.Me)
			authGroup.PUT("/update", authMW.RequireAuth(), authHandler.UpdateProfile)
			authGroup.PUT("/change-password", authMW.RequireAuth(), authHandler.ChangePassword)
		}

		productsGroup := apiGroup.Group("/products")
		{
			productsGroup.GET("", productHandler.List)
			productsGroup.GET("/categories", productHandler.Categories)
			productsGroup.GET("/:id", productHandler.Get)
		}

		cartGroup := apiGroup.Group("/cart", authMW.RequireAuth())
		{
			cartGroup.GET("", cartHandler.Get)
			cartGroup.POST("/add", cartHandler.Add)
			cartGroup.PUT("/update/:id", cartHandler.Update)
			cartGroup.DELETE("/remove/:id", cartHandler.Remove)
			cartGroup.DELETE("/clear", cartHandler.Clear)
		}

		ordersGroup := apiGroup.Group("/orders", authMW.RequireAuth())
		{
			ordersGroup.POST("", createLimiter.Handler(), orderHandler.Create)
			ordersGroup.GET("", orderHandler.List)
			ordersGroup.GET("/:id", orderHandler.Get)
		}

		paymentGroup := apiGroup.Group("/payment")
		{
			paymentGroup.POST("/create-intent", authMW.RequireAuth(), paymentHandler.CreateIntent)
			// Stripe authenticates webhooks via signature, not bearer token.
			paymentGroup.POST("/webhook", paymentHandler.Webhook)
		}

		adminGroup := apiGroup.Group("/admin", authMW.RequireAuth(), middleware.RestrictTo(models.RoleAdmin))
		{
			adminGroup.POST("/products", createLimiter.Handler(), productHandler.Create)
			adminGroup.PUT("/products/:id", productHandler.Update)
			adminGroup.DELETE("/products/:id", productHandler.Delete)
			adminGroup.GET("/orders", orderHandler.ListAll)
			adminGroup.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Response{
			Status:  "fail",
			Message: "Can't find " + c.Request.URL.Path + " on this server!",
		})
	})

	logger.Info("API routes configured under /api and /health")
}
