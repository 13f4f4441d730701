package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"lazshoppe/internal/config"
	"lazshoppe/internal/database"
	"lazshoppe/internal/handlers"
	"lazshoppe/internal/migrations"
	"lazshoppe/internal/redis"
	"lazshoppe/internal/repository"
	"lazshoppe/internal/services"
	"lazshoppe/pkg/notify"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if cfg.SeedOnStart {
		if err := migrations.Seed(db); err != nil {
			log.Printf("Warning: Failed to seed default data: %v", err)
		}
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Initialize notification client
	notifyClient := notify.NewClient(cfg.NotifyAPIURL, cfg.NotifyUsername, cfg.NotifyPassword)

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	supportRepo := repository.NewSupportRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	authService := services.NewAuthService(profileRepo, redisClient, sessionTTL)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, productRepo, redisClient)
	checkoutService := services.NewCheckoutService(cartRepo, orderRepo, profileRepo, redisClient, redisClient, notifyClient, cfg.ShippingFee, sessionTTL)
	orderService := services.NewOrderService(orderRepo, orderItemRepo, profileRepo, notifyClient)
	profileService := services.NewProfileService(profileRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)
	supportService := services.NewSupportService(supportRepo)
	dashboardService := services.NewDashboardService(productRepo, orderRepo, profileRepo, redisClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService, checkoutService)
	orderHandler := handlers.NewOrderHandler(checkoutService, orderService)
	accountHandler := handlers.NewAccountHandler(profileService, wishlistService, supportService)
	adminHandler := handlers.NewAdminHandler(productService, orderService, profileService, supportService, dashboardService)

	// Setup routes
	router := gin.Default()

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/me", authHandler.Me)

		api.GET("/products", catalogHandler.ListProducts)
		api.GET("/products/categories", catalogHandler.ListCategories)
		api.GET("/products/:id", catalogHandler.GetProduct)

		api.POST("/support", accountHandler.CreateSupportRequest)

		authed := api.Group("")
		authed.Use(handlers.AuthRequired(authService))
		{
			authed.GET("/cart", cartHandler.GetCart)
			authed.POST("/cart/items", cartHandler.AddItem)
			authed.PUT("/cart/items/:product_id", cartHandler.UpdateItem)
			authed.DELETE("/cart/items", cartHandler.RemoveItems)

			authed.POST("/checkout", cartHandler.StartCheckout)
			authed.POST("/orders", orderHandler.PlaceOrder)
			authed.GET("/orders", orderHandler.ListOrders)
			authed.GET("/orders/:id", orderHandler.GetOrder)
			authed.POST("/orders/:id/cancel", orderHandler.CancelOrder)

			authed.GET("/profile", accountHandler.GetProfile)
			authed.PUT("/profile", accountHandler.UpdateProfile)
			authed.GET("/wishlist", accountHandler.GetWishlist)
			authed.POST("/wishlist", accountHandler.ToggleWishlist)
		}

		admin := api.Group("/admin")
		admin.Use(handlers.AuthRequired(authService), handlers.AdminOnly())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)

			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)

			admin.GET("/support", adminHandler.ListSupportRequests)
			admin.PUT("/support/:id/resolve", adminHandler.ResolveSupportRequest)
		}
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
