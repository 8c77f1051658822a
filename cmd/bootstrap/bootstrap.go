package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ayurcare/config"
	deliveryHttp "ayurcare/internal/delivery/http"
	"ayurcare/internal/delivery/http/handler"
	"ayurcare/internal/delivery/http/middleware"
	domainRepo "ayurcare/internal/domain/repository"
	"ayurcare/internal/infrastructure/cache"
	"ayurcare/internal/infrastructure/database"
	"ayurcare/internal/repository"
	"ayurcare/internal/service"
	"ayurcare/internal/usecase"
	"ayurcare/pkg/jwt"
	"ayurcare/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize the key-value store backing the patient, settings and
	// audit collections
	kv, err := app.initStore(cfg)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Store initialized with driver %q", cfg.Store.Driver)

	// Redis also backs the token allow-list when available. The store
	// driver may have connected already; otherwise connect on demand.
	if app.RedisClient == nil && cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logrus.Warnf("Redis unavailable, token revocation disabled: %v", err)
		} else {
			app.RedisClient = redisClient
			logrus.Info("Redis connected successfully")
		}
	}

	// Initialize all layers
	server := initializeServer(cfg, kv, app.RedisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initStore builds the configured key-value store driver.
func (app *App) initStore(cfg *config.Config) (domainRepo.KeyValueStore, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return repository.NewMemoryStore(), nil

	case config.StoreDriverRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		return repository.NewRedisStore(redisClient), nil

	case config.StoreDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		kv, err := repository.NewGormStore(db)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize store table: %w", err)
		}
		return kv, nil

	case config.StoreDriverFile:
		kv, err := repository.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		return kv, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, kv domainRepo.KeyValueStore, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(kv, log)
	settingsRepo := repository.NewSettingsRepository(kv, log)
	auditRepo := repository.NewAuditLogRepository(kv, log)

	// Initialize services
	analysisService := service.NewAnalysisService()
	ayurbotService := service.NewAyurBotService()
	auditService := service.NewAuditService(log, auditRepo)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, analysisService, auditService)
	settingsUsecase := usecase.NewSettingsUsecase(log, settingsRepo, auditService)
	authUsecase := usecase.NewAuthUsecase(log, cfg.Auth, jwtService, redisClient, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	backupHandler := handler.NewBackupHandler(patientUsecase)
	settingsHandler := handler.NewSettingsHandler(settingsUsecase, customValidator)
	chatHandler := handler.NewChatHandler(ayurbotService, patientUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, cfg.Auth.Enabled())
	corsMiddleware := middleware.NewCORSMiddleware()

	if !cfg.Auth.Enabled() {
		logrus.Warn("No practitioner password configured, API running in open mode")
	}

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, patientHandler, backupHandler, settingsHandler, chatHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
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

	logrus.Info("Server shutdown complete")
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
