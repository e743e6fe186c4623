package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/budgetbook/internal/config"
	"github.com/budgetbook/internal/handler"
	"github.com/budgetbook/internal/middleware"
	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
	"github.com/budgetbook/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Build info (injected at build time via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const (
	authRateLimit       = 10
	authRateLimitWindow = time.Minute
)

func main() {
	// Load .env before reading configuration
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize logging
	if err := middleware.InitLogger("logs"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis
	rdb := initRedis(cfg)

	// Auto migrate database
	if err := autoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	monthRepo := repository.NewMonthRepository(db)
	outgoingRepo := repository.NewOutgoingRepository(db)
	transferRepo := repository.NewTransferRepository(db)

	// Initialize services
	sessionTTL := time.Duration(cfg.Session.ExpireDays) * 24 * time.Hour
	authService := service.NewAuthService(userRepo, sessionRepo, sessionTTL)
	accountService := service.NewAccountService(accountRepo)
	monthService := service.NewMonthService(monthRepo)
	outgoingService := service.NewOutgoingService(outgoingRepo, monthRepo)
	transferService := service.NewTransferService(transferRepo, monthRepo)

	// Initialize handlers
	cookieMaxAge := int(sessionTTL.Seconds())
	authHandler := handler.NewAuthHandler(authService, cfg.Session.CookieName, cookieMaxAge)
	accountHandler := handler.NewAccountHandler(accountService)
	monthHandler := handler.NewMonthHandler(monthService, outgoingService)
	outgoingHandler := handler.NewOutgoingHandler(outgoingService)
	transferHandler := handler.NewTransferHandler(transferService)

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Add request logging middleware
	router.Use(middleware.RequestLoggerMiddleware())

	// Add CORS middleware
	router.Use(corsMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		redisStatus := "ok"
		if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
			redisStatus = "unavailable"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"version":    Version,
			"commit":     Commit,
			"build_time": BuildTime,
			"time":       time.Now().Unix(),
			"redis":      redisStatus,
		})
	})

	// Route registration: credential endpoints are rate limited, every
	// ledger endpoint sits behind the session middleware
	authMiddleware := middleware.AuthMiddleware(authService, cfg.Session.CookieName)
	rateLimiter := middleware.RateLimitMiddleware(rdb, authRateLimit, authRateLimitWindow)

	root := router.Group("")
	{
		authHandler.RegisterRoutes(root, rateLimiter, authMiddleware)
		accountHandler.RegisterRoutes(root, authMiddleware)
		monthHandler.RegisterRoutes(root, authMiddleware)
		outgoingHandler.RegisterRoutes(root, authMiddleware)
		transferHandler.RegisterRoutes(root, authMiddleware)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Close Redis connection
	if err := rdb.Close(); err != nil {
		log.Printf("Error closing Redis connection: %v", err)
	}

	log.Println("Server exited properly")
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.Mode == "release" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Account{},
		&models.Month{},
		&models.Outgoing{},
		&models.Transfer{},
	)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Cookie auth needs credentialed CORS, so the origin is
		// reflected rather than wildcarded
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
