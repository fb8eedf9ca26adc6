package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/volhub/backend/internal/application/catalog"
	engagementapp "github.com/volhub/backend/internal/application/engagement"
	identityapp "github.com/volhub/backend/internal/application/identity"
	listingapp "github.com/volhub/backend/internal/application/listing"
	"github.com/volhub/backend/internal/infrastructure/cache"
	"github.com/volhub/backend/internal/infrastructure/config"
	"github.com/volhub/backend/internal/infrastructure/logger"
	"github.com/volhub/backend/internal/infrastructure/persistence"
	"github.com/volhub/backend/internal/interfaces/http/handler"
	"github.com/volhub/backend/internal/interfaces/http/middleware"
	"github.com/volhub/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting VolHub Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	volunteerRepo := persistence.NewGormVolunteerRepository(db.DB)
	organizationRepo := persistence.NewGormOrganizationRepository(db.DB)
	skillRepo := persistence.NewGormSkillRepository(db.DB)
	opportunityRepo := persistence.NewGormOpportunityRepository(db.DB)
	applicationRepo := persistence.NewGormApplicationRepository(db.DB)

	// Initialize skill catalog cache (in-memory or Redis per config)
	cacheFactory := cache.NewSkillCacheFactory(cfg.Cache, cfg.Redis, cache.WithLogger(log))
	skillCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create skill cache", zap.Error(err))
	}
	defer func() {
		if err := skillCache.Close(); err != nil {
			log.Error("Error closing skill cache", zap.Error(err))
		}
	}()

	// Initialize application services
	volunteerService := identityapp.NewVolunteerService(volunteerRepo, skillRepo)
	organizationService := identityapp.NewOrganizationService(organizationRepo)
	authService := identityapp.NewAuthService(volunteerRepo, organizationRepo)
	skillService := catalogapp.NewSkillService(skillRepo, skillCache, cfg.Cache.SkillTTL)
	opportunityService := listingapp.NewOpportunityService(opportunityRepo)
	applicationService := engagementapp.NewApplicationService(applicationRepo, opportunityRepo)

	// Authentication middleware shared by the write endpoints
	requireAuth := middleware.RequireAuth(authService)

	// Initialize HTTP handlers
	volunteerHandler := handler.NewVolunteerHandler(volunteerService)
	organizationHandler := handler.NewOrganizationHandler(organizationService)
	skillHandler := handler.NewSkillHandler(skillService)
	opportunityHandler := handler.NewOpportunityHandler(opportunityService, requireAuth)
	applicationHandler := handler.NewApplicationHandler(applicationService, requireAuth)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Register all route groups under /api
	router.NewRouter(engine).
		Register(systemHandler).
		Register(volunteerHandler).
		Register(organizationHandler).
		Register(skillHandler).
		Register(opportunityHandler).
		Register(applicationHandler).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
