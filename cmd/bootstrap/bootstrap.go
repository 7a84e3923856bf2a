package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mos3ef-api/config"
	deliveryHttp "mos3ef-api/internal/delivery/http"
	"mos3ef-api/internal/delivery/http/handler"
	"mos3ef-api/internal/delivery/http/middleware"
	"mos3ef-api/internal/domain/entity"
	"mos3ef-api/internal/infrastructure/cache"
	"mos3ef-api/internal/infrastructure/database"
	"mos3ef-api/internal/repository"
	"mos3ef-api/internal/service"
	"mos3ef-api/internal/usecase"
	"mos3ef-api/pkg/jwt"
	"mos3ef-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const warmupTimeout = 2 * time.Minute

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client // nil unless the redis cache driver is active
	Cache       *service.CacheService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log.IsLevelEnabled(logrus.DebugLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if cfg.App.Env == "development" {
		if err := autoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Info("Schema migrated")
	}

	// Initialize cache backend
	store, redisClient := newCacheStore(cfg, log)
	app.RedisClient = redisClient
	app.Cache = service.NewCacheService(store, log)

	// Initialize all layers
	app.Server = initializeServer(cfg, db, app.Cache, log)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		logrus.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	logrus.SetLevel(level)

	return logrus.StandardLogger()
}

// newCacheStore selects the cache backend. An unreachable Redis falls back to
// the in-process store so the API still starts.
func newCacheStore(cfg *config.Config, log *logrus.Logger) (cache.Store, *redis.Client) {
	memory := func() cache.Store {
		return cache.NewMemoryStore(cfg.Cache, cfg.Cache.TTL.Max())
	}

	if cfg.Cache.Driver != config.CacheDriverRedis {
		log.WithField("capacity", cfg.Cache.Capacity).Info("Using in-memory cache")
		return memory(), nil
	}

	client, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warnf("Redis unavailable, falling back to in-memory cache: %+v", err)
		return memory(), nil
	}
	log.Info("Redis connected successfully")
	return cache.NewRedisStore(client), client
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Hospital{},
		&entity.Service{},
		&entity.Patient{},
		&entity.Review{},
		&entity.SavedService{},
	)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, cacheService *service.CacheService, log *logrus.Logger) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	serviceRepo := repository.NewServiceRepository()
	hospitalRepo := repository.NewHospitalRepository()
	reviewRepo := repository.NewReviewRepository()
	patientRepo := repository.NewPatientRepository()

	// Initialize cache policy and invalidation
	policy := service.NewCachePolicy(cfg.Cache.TTL)
	invalidator := service.NewCacheInvalidator(cacheService)

	if cfg.Cache.Warmup {
		warmer := service.NewCacheWarmer(db, cacheService, policy, serviceRepo, hospitalRepo, log)
		ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
		if err := warmer.WarmOnStartup(ctx); err != nil {
			log.Warnf("Cache warm-up incomplete: %+v", err)
		}
		cancel()
	}

	// Initialize usecases
	serviceUsecase := usecase.NewServiceUsecase(db, log, cacheService, policy, serviceRepo, reviewRepo)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, cacheService, policy, invalidator, hospitalRepo, serviceRepo, reviewRepo)
	reviewUsecase := usecase.NewReviewUsecase(db, log, invalidator, reviewRepo, serviceRepo, patientRepo)
	patientUsecase := usecase.NewPatientUsecase(db, log, cacheService, policy, invalidator, patientRepo, serviceRepo)

	// Initialize handlers
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator, log)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator, log)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator, log)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, log)
	healthHandler := handler.NewHealthHandler(db, cacheService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, cacheService.Store(), log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigins...)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		serviceHandler,
		hospitalHandler,
		reviewHandler,
		patientHandler,
		healthHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	stats := app.Cache.Stats()
	logrus.WithFields(logrus.Fields{
		"hits":     stats.Hits,
		"misses":   stats.Misses,
		"computes": stats.Computes,
		"errors":   stats.Errors,
	}).Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
