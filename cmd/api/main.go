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

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/HardPrice/test-task-secunda/internal/config"
	"github.com/HardPrice/test-task-secunda/internal/database"
	"github.com/HardPrice/test-task-secunda/internal/handlers"
	"github.com/HardPrice/test-task-secunda/internal/middleware"
	"github.com/HardPrice/test-task-secunda/internal/services"
	"github.com/HardPrice/test-task-secunda/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch cfg.App.Env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	err = utils.InitLogger(&utils.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting Organization Directory API", utils.LogFields{
		"environment": cfg.App.Env,
		"port":        cfg.App.Port,
	})

	dbConn, err := database.Connect(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer dbConn.Close()

	if err := dbConn.AutoMigrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}
	logger.Info("Database migrations completed successfully", nil)

	var redisClient database.RedisClient
	if cfg.Redis.URL != "" {
		redisClient, err = database.InitializeRedis(cfg.Redis)
		if err != nil {
			logger.Warn("Redis not available, continuing without descendant cache", utils.LogFields{
				"error": err.Error(),
			})
			redisClient = nil
		} else {
			logger.Info("Redis connected successfully", utils.LogFields{
				"url": cfg.Redis.URL,
			})
		}
	}

	svc := initializeServices(cfg, dbConn, redisClient)
	hnd := initializeHandlers(dbConn, svc)

	router := setupRouter(cfg, hnd)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info("Server starting", utils.LogFields{
			"addr": srv.Addr,
		})

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", err)
	}

	logger.Info("Server stopped gracefully")
}

// ServiceContainer holds all initialized services
type ServiceContainer struct {
	BuildingService     *services.BuildingService
	ActivityService     *services.ActivityService
	OrganizationService *services.OrganizationService
}

// HandlerContainer holds all initialized handlers
type HandlerContainer struct {
	BuildingHandler     *handlers.BuildingHandler
	ActivityHandler     *handlers.ActivityHandler
	OrganizationHandler *handlers.OrganizationHandler
	HealthHandler       *handlers.HealthHandler
}

func initializeServices(cfg *config.Config, db database.Database, redisClient database.RedisClient) *ServiceContainer {
	buildingService := services.NewBuildingService(db)
	activityService := services.NewActivityService(db, redisClient, cfg.Redis.CacheTTL)
	organizationService := services.NewOrganizationService(db, activityService)

	return &ServiceContainer{
		BuildingService:     buildingService,
		ActivityService:     activityService,
		OrganizationService: organizationService,
	}
}

func initializeHandlers(db database.Database, svc *ServiceContainer) *HandlerContainer {
	return &HandlerContainer{
		BuildingHandler:     handlers.NewBuildingHandler(svc.BuildingService),
		ActivityHandler:     handlers.NewActivityHandler(svc.ActivityService),
		OrganizationHandler: handlers.NewOrganizationHandler(svc.OrganizationService),
		HealthHandler:       handlers.NewHealthHandler(db.DB()),
	}
}

func setupRouter(cfg *config.Config, hnd *HandlerContainer) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(utils.GetLogrus()))

	router.Use(func(c *gin.Context) {
		utils.SetSecurityHeaders(c)
		c.Next()
	})

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"*"}
	}
	if len(corsConfig.AllowMethods) == 0 {
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(corsConfig.AllowHeaders) == 0 {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", cfg.Auth.APIKeyHeader}
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit))

	// Health endpoints (no auth required)
	router.GET("/health", hnd.HealthHandler.Health)
	router.GET("/ready", hnd.HealthHandler.Readiness)
	router.GET("/live", hnd.HealthHandler.Liveness)

	apiKey := middleware.NewAPIKeyMiddleware(cfg.Auth)

	v1 := router.Group("/api/v1")
	v1.Use(apiKey.RequireAPIKey())
	{
		buildings := v1.Group("/buildings")
		{
			buildings.GET("/", hnd.BuildingHandler.List)
			buildings.POST("/", hnd.BuildingHandler.Create)
		}

		activities := v1.Group("/activities")
		{
			activities.GET("/", hnd.ActivityHandler.List)
			activities.POST("/", hnd.ActivityHandler.Create)
		}

		organizations := v1.Group("/organizations")
		{
			organizations.GET("/", hnd.OrganizationHandler.List)
			organizations.GET("/:id", hnd.OrganizationHandler.Get)
			organizations.POST("/", hnd.OrganizationHandler.Create)
		}
	}

	return router
}
