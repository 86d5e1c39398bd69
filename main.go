// Package main provides the main entry point for the Odekake event calendar service
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/handlers"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/middleware"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/router"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/services"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/session"
	businessflow "github.com/Git-peanutsuu/OdekakeEventCalendar-app/business_flow"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/config"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/models"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/repository"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Application represents the main application structure
type Application struct {
	router    router.Router
	config    *config.ProductionConfig
	stopFuncs []func()
}

func main() {
	log.Println("Starting Odekake event calendar...")

	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogOutput(cfg.Logging)

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := app.router.Start(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down gracefully...")

	for _, fn := range app.stopFuncs {
		fn()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.router.GetApp().ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogOutput points the standard logger at stdout, a rotating file, or both
func setupLogOutput(cfg config.LoggingConfig) {
	switch cfg.Output {
	case "file", "both":
		rotator := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		if cfg.Output == "both" {
			log.SetOutput(io.MultiWriter(os.Stdout, rotator))
		} else {
			log.SetOutput(rotator)
		}
	default:
		log.SetOutput(os.Stdout)
	}
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	if err := db.AutoMigrate(
		&models.Event{},
		&models.LocationTag{},
		&models.ReferenceWebsite{},
		&models.CalendarMetadata{},
		&models.UserInterest{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// initializeCache initializes the Redis client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled || cfg.Provider != "redis" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established to %s (db=%d)", cfg.RedisURL, cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor starts a background goroutine that periodically pings Redis
// to detect connectivity issues. The returned cancel function stops the monitor.
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf("Redis healthcheck failed: %v", err)
				}
				c()
			}
		}
	}()
	return cancel
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	// Session store: Redis when configured, in-process otherwise
	var sessionStore session.Store
	if rc != nil {
		sessionStore = session.NewRedisStore(rc)
		cancel := startCacheHealthMonitor(context.Background(), rc, 30*time.Second)
		stopFuncs = append(stopFuncs, cancel)
	} else {
		log.Println("Redis not configured, using in-process session store")
		sessionStore = session.NewMemoryStore()
	}

	// Initialize repositories
	eventRepo := repository.NewEventRepository(db)
	tagRepo := repository.NewLocationTagRepository(db)
	websiteRepo := repository.NewReferenceWebsiteRepository(db)
	metadataRepo := repository.NewCalendarMetadataRepository(db)
	interestRepo := repository.NewUserInterestRepository(db)

	// Initialize services
	shareSvc := services.NewShareService()
	exportSvc := services.NewCalendarExportService()

	// Initialize flows
	authFlow := businessflow.NewAdminAuthFlow(sessionStore, cfg.Admin.Password, cfg.Admin.PasswordHash, cfg.Security.SessionTimeout)
	eventFlow := businessflow.NewEventFlow(eventRepo, metadataRepo, shareSvc, exportSvc, db)
	tagFlow := businessflow.NewLocationTagFlow(tagRepo, metadataRepo, db)
	websiteFlow := businessflow.NewReferenceWebsiteFlow(websiteRepo, metadataRepo, db)
	calendarFlow := businessflow.NewCalendarFlow(eventRepo, tagRepo, metadataRepo)
	interestFlow := businessflow.NewUserInterestFlow(interestRepo, eventRepo)

	// Initialize handlers
	sessionMW := middleware.NewSessionMiddleware(sessionStore)
	adminHandler := handlers.NewAdminAuthHandler(authFlow, cfg.Security.SessionCookieSecure, cfg.Security.SessionCookieSameSite)
	eventHandler := handlers.NewEventHandler(eventFlow)
	tagHandler := handlers.NewLocationTagHandler(tagFlow)
	websiteHandler := handlers.NewReferenceWebsiteHandler(websiteFlow)
	calendarHandler := handlers.NewCalendarHandler(calendarFlow)
	interestHandler := handlers.NewUserInterestHandler(interestFlow, sessionStore, cfg.Security.SessionCookieSecure, cfg.Security.SessionCookieSameSite)

	r := router.NewFiberRouter(
		router.Config{
			CORSAllowOrigins: cfg.Security.AllowedOrigins,
			MetricsEnabled:   cfg.Metrics.Enabled,
		},
		sessionMW,
		adminHandler,
		eventHandler,
		tagHandler,
		websiteHandler,
		calendarHandler,
		interestHandler,
	)

	return &Application{
		router:    r,
		config:    cfg,
		stopFuncs: stopFuncs,
	}, nil
}
