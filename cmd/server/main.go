package main

import (
	"context" // context package is needed for Redis operations

	"moneystats/internal/api"        // Custom package for API handlers
	"moneystats/internal/auth"       // Authorization guard and credential service
	"moneystats/internal/config"     // Custom package for configuration
	"moneystats/internal/middleware" // Custom package for middleware
	"moneystats/internal/statement"  // Statement recorder
	"moneystats/internal/store"      // Persistence layer
	"moneystats/internal/token"      // JWT token service
	"moneystats/internal/utils"      // Redis cache helpers
	"moneystats/internal/wallet"     // Wallet aggregator

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		log.Fatalf("failed to connect to Redis: %v", err)
	}

	// Stores
	creds := store.NewGormCredentialStore(db)
	categories := store.NewGormCategoryStore(db)
	wallets := store.NewGormWalletStore(db)
	statements := store.NewGormStatementStore(db)

	// Services, wired by constructor
	tokens := token.NewService(cfg.JWTSecret)
	guard := auth.NewGuard(tokens, creds, log)
	authSvc := auth.NewService(creds, tokens, guard, log)
	walletSvc := wallet.NewService(guard, wallets, categories, statements, log)
	statementSvc := statement.NewService(guard, wallets, statements, log)
	cache := utils.NewCache(redisClient)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		log.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Every route gets the raw bearer token; the services run the guard.
	r.Use(middleware.BearerToken())

	// Auth routes
	authGroup := r.Group("/auth")
	authGroup.POST("/signup", api.SignUpHandler(authSvc))          // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(authSvc))            // Login endpoint
	authGroup.GET("/me", api.CurrentUserHandler(authSvc))          // Current user endpoint
	authGroup.PUT("/me", api.UpdateUserHandler(authSvc))           // Profile update endpoint
	authGroup.PUT("/password", api.UpdatePasswordHandler(authSvc)) // Password rotation endpoint
	authGroup.GET("/users", api.ListUsersHandler(authSvc))         // Admin user listing

	// Wallet routes
	walletGroup := r.Group("/wallet")
	walletGroup.GET("", api.ListWalletsHandler(walletSvc))                            // List wallets endpoint
	walletGroup.POST("", api.AddWalletHandler(walletSvc))                             // Add wallet endpoint
	walletGroup.PUT("", api.EditWalletHandler(walletSvc))                             // Edit wallet endpoint
	walletGroup.GET("/categories", api.ListCategoriesHandler(categories, cache, log)) // Category reference list
	walletGroup.GET("/dashboard", api.DashboardHandler(walletSvc))                    // Dashboard endpoint
	walletGroup.GET("/:id", api.GetWalletHandler(walletSvc))                          // Get wallet endpoint
	walletGroup.DELETE("/:id", api.DeleteWalletHandler(walletSvc))                    // Delete wallet endpoint

	// Statement routes
	statementGroup := r.Group("/statement")
	statementGroup.POST("", api.AddStatementHandler(statementSvc))         // Add statement endpoint
	statementGroup.GET("/dates", api.ListDatesHandler(statementSvc))       // Distinct dates endpoint
	statementGroup.GET("/date/:date", api.ListByDateHandler(statementSvc)) // Statements by date endpoint

	log.Info("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                     // Start the server on port cfg.AppPort
}
