package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/adrianrdguez/GoFast/airports"
	"github.com/adrianrdguez/GoFast/api"
	"github.com/adrianrdguez/GoFast/cache"
	"github.com/adrianrdguez/GoFast/calculator"
	"github.com/adrianrdguez/GoFast/calendar"
	"github.com/adrianrdguez/GoFast/config"
	"github.com/adrianrdguez/GoFast/database"
	"github.com/adrianrdguez/GoFast/detector"
	"github.com/adrianrdguez/GoFast/flightstate"
	"github.com/adrianrdguez/GoFast/repository"
	"github.com/adrianrdguez/GoFast/scheduler"
	"github.com/adrianrdguez/GoFast/service"
	"github.com/adrianrdguez/GoFast/snapshot"
	"github.com/adrianrdguez/GoFast/sources"
	"github.com/adrianrdguez/GoFast/transport"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	db        *gorm.DB
	cache     cache.GenericCacheInterface
	server    *api.Server
	scheduler *scheduler.Scheduler
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeDatabase() error {
	slog.Info("Initializing database...")

	db, err := database.InitDB(app.config.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	slog.Info("Database initialized successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	if err := app.initializeCache(); err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	// Create travel-time provider manager with the full decorator stack
	providerManager, err := app.createProviderManager()
	if err != nil {
		return fmt.Errorf("create provider manager: %w", err)
	}

	directory := airports.Default()
	flightDetector := detector.NewDetector(directory)
	leaveCalculator := calculator.NewCalculator(directory, providerManager)

	// Create repository and event sources
	manualRepo := repository.NewManualFlightRepository(app.db, directory)
	coordinator := app.createCoordinator(flightDetector, manualRepo)

	snapshots := snapshot.NewStore(app.cache, snapshot.DefaultTTL)

	// Create flight service
	flightService := service.NewFlightService(
		flightDetector,
		coordinator,
		leaveCalculator,
		flightstate.NewEngine(),
		manualRepo,
		snapshots,
		providerManager,
		&app.config.Calculator,
	)

	// Create server and scheduler
	app.server = api.NewServer(app.db, app.config, flightService)
	app.scheduler = scheduler.NewScheduler(flightService, &app.config.Scheduler)

	slog.Info("Services initialized successfully")
	return nil
}

// initializeCache selects the snapshot/ETA cache backend. Redis when enabled,
// otherwise the in-process cache.
func (app *Application) initializeCache() error {
	if app.config.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:     app.config.Redis.Addr,
			Password: app.config.Redis.Password,
			DB:       app.config.Redis.DB,
		})
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err, "addr", app.config.Redis.Addr)
			return err
		}
		app.cache = redisCache
		return nil
	}

	app.cache = cache.NewMemoryCache()
	return nil
}

// createProviderManager creates and configures the travel-time provider manager
func (app *Application) createProviderManager() (*transport.ProviderManager, error) {
	slog.Debug("Creating travel-time provider manager...")

	providerManager, err := transport.NewProviderManagerBuilder().
		WithOSRMBaseURL(app.config.Transport.OSRMBaseURL).
		WithCacheTTL(time.Duration(app.config.Transport.CacheTTLMinutes) * time.Minute).
		WithLogFilePath(app.config.Transport.LogFilePath).
		WithCacheEnabled(app.config.Transport.EnableCache).
		WithLoggingEnabled(app.config.Transport.EnableLogging).
		WithCache(app.cache).
		Build()
	if err != nil {
		return nil, err
	}

	slog.Debug("Provider manager created", "config", providerManager.GetProviderInfo())
	return providerManager, nil
}

// createCoordinator wires the flight sources in fallback priority order.
// Calendar sources come first; manual entries answer when nothing else can.
func (app *Application) createCoordinator(det *detector.Detector, manualRepo *repository.ManualFlightRepository) *sources.Coordinator {
	scanWindow := time.Duration(app.config.Calendar.ScanWindowHours) * time.Hour
	builder := sources.NewCoordinatorBuilder()

	if app.config.Calendar.Token != "" {
		builder.AddSource(sources.NewGoogleCalendarSource(calendar.NewRESTClient(&app.config.Calendar), det, scanWindow))
	}
	if app.config.Calendar.ICSPath != "" {
		builder.AddSource(sources.NewICSCalendarSource(calendar.NewICSFile(&app.config.Calendar), det, scanWindow))
	}
	builder.AddSource(sources.NewManualSource(manualRepo))

	return builder.Build()
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting application...")

	slog.Info("Starting scheduler...")
	app.scheduler.Start()

	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Shutting down application...")

	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	switch c := app.cache.(type) {
	case *cache.MemoryCache:
		c.Stop()
	case *cache.RedisCache:
		if err := c.Close(); err != nil {
			slog.Warn("Error closing cache", "error", err)
		}
	}

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("Error closing database", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
