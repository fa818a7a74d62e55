package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vittahub/config"
	deliveryHttp "vittahub/internal/delivery/http"
	"vittahub/internal/delivery/http/handler"
	"vittahub/internal/delivery/http/middleware"
	"vittahub/internal/infrastructure/cache"
	"vittahub/internal/infrastructure/catalog"
	"vittahub/internal/infrastructure/geocode"
	"vittahub/internal/repository"
	"vittahub/internal/service"
	"vittahub/internal/usecase"
	"vittahub/pkg/validator"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
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

	// Session state lives in Redis when configured; a single-process
	// in-memory store otherwise.
	var sessionStore service.SessionStore
	if cfg.Redis.Host != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		sessionStore = service.NewRedisSessionStore(redisClient)
		logrus.Info("Redis connected successfully")
	} else {
		sessionStore = service.NewMemorySessionStore()
		logrus.Info("Using in-memory session store")
	}

	// Initialize all layers
	server, err := initializeServer(cfg, sessionStore)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, sessionStore service.SessionStore) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Appointment slots are computed in the clinics' timezone
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Booking.Timezone, err)
	}
	now := func() time.Time { return time.Now().In(location) }

	// Initialize repositories over the static catalog
	clinicRepo := repository.NewClinicRepository(catalog.Clinics())
	procedureRepo := repository.NewProcedureRepository(catalog.Procedures())
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize services
	locationService := service.NewLocationService(sessionStore, log)
	locationService.Subscribe(service.AuditSubscriber(log))
	geocoder := geocode.NewNominatimClient(cfg.Geocode, log)

	// Initialize usecases
	clinicUsecase := usecase.NewClinicUsecase(log, clinicRepo, locationService)
	procedureUsecase := usecase.NewProcedureUsecase(log, procedureRepo)
	locationUsecase := usecase.NewLocationUsecase(log, locationService, geocoder)
	wizardUsecase := usecase.NewWizardUsecase(log, clinicRepo, procedureRepo, appointmentRepo, sessionStore, cfg.Booking, now)

	// Initialize handlers
	clinicHandler := handler.NewClinicHandler(clinicUsecase)
	procedureHandler := handler.NewProcedureHandler(procedureUsecase)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	wizardHandler := handler.NewWizardHandler(wizardUsecase, customValidator)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware()
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(clinicHandler, procedureHandler, locationHandler, wizardHandler, sessionMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
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

// Close closes all connections
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
