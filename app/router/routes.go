// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/dto"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/handlers"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/app/middleware"
	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// Config carries the router-level knobs taken from the application config
type Config struct {
	CORSAllowOrigins []string
	MetricsEnabled   bool
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app             *fiber.App
	cfg             Config
	sessionMW       *middleware.SessionMiddleware
	adminHandler    handlers.AdminAuthHandlerInterface
	eventHandler    handlers.EventHandlerInterface
	tagHandler      handlers.LocationTagHandlerInterface
	websiteHandler  handlers.ReferenceWebsiteHandlerInterface
	calendarHandler handlers.CalendarHandlerInterface
	interestHandler handlers.UserInterestHandlerInterface
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(
	cfg Config,
	sessionMW *middleware.SessionMiddleware,
	adminHandler handlers.AdminAuthHandlerInterface,
	eventHandler handlers.EventHandlerInterface,
	tagHandler handlers.LocationTagHandlerInterface,
	websiteHandler handlers.ReferenceWebsiteHandlerInterface,
	calendarHandler handlers.CalendarHandlerInterface,
	interestHandler handlers.UserInterestHandlerInterface,
) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Odekake Event Calendar API",
		ServerHeader: "OdekakeEventCalendar",
		ErrorHandler: errorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  strictJSONDecode,
	})

	return &FiberRouter{
		app:             app,
		cfg:             cfg,
		sessionMW:       sessionMW,
		adminHandler:    adminHandler,
		eventHandler:    eventHandler,
		tagHandler:      tagHandler,
		websiteHandler:  websiteHandler,
		calendarHandler: calendarHandler,
		interestHandler: interestHandler,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	log.Println("Setting up routes...")

	r.setupMiddleware()

	if r.cfg.MetricsEnabled {
		r.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := r.app.Group("/api")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	// General rate limiting for all API routes
	api.Use(limiter.New(limiter.Config{
		Max:        600,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many requests. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	}))

	// Resolve the session cookie for everything below
	api.Use(r.sessionMW.Load())

	// Admin auth endpoints with stricter rate limiting on login
	admin := api.Group("/admin")
	admin.Post("/login", r.adminHandler.Login, limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
				Success: false,
				Message: "Too many login attempts. Please try again later.",
				Error: dto.ErrorDetail{
					Code: "RATE_LIMIT_EXCEEDED",
				},
			})
		},
	}))
	admin.Post("/logout", r.adminHandler.Logout)
	admin.Get("/status", r.adminHandler.Status)

	requireAdmin := r.sessionMW.RequireAdmin()

	// Event endpoints: reads are public, mutations require admin
	events := api.Group("/events")
	events.Get("/", r.eventHandler.List)
	events.Get("/date/:date", r.eventHandler.ByDate)
	events.Get("/:id", r.eventHandler.Get)
	events.Get("/:id/share", r.eventHandler.Share)
	events.Get("/:id/google-calendar", r.eventHandler.GoogleCalendarLink)
	events.Get("/:id/calendar.ics", r.eventHandler.ExportICS)
	events.Post("/", r.eventHandler.Create, requireAdmin)
	events.Put("/:id", r.eventHandler.Update, requireAdmin)
	events.Delete("/:id", r.eventHandler.Delete, requireAdmin)

	// Location tag endpoints
	tags := api.Group("/location-tags")
	tags.Get("/", r.tagHandler.List)
	tags.Post("/", r.tagHandler.Create, requireAdmin)
	tags.Put("/:id", r.tagHandler.Update, requireAdmin)
	tags.Delete("/:id", r.tagHandler.Delete, requireAdmin)

	// Reference website endpoints
	websites := api.Group("/reference-websites")
	websites.Get("/", r.websiteHandler.List)
	websites.Post("/", r.websiteHandler.Create, requireAdmin)
	websites.Put("/:id", r.websiteHandler.Update, requireAdmin)
	websites.Delete("/:id", r.websiteHandler.Delete, requireAdmin)

	// Month grid and metadata
	api.Get("/calendar/month", r.calendarHandler.MonthView)
	api.Get("/calendar/last-updated", r.calendarHandler.LastUpdated)

	// Per-session bookmarks
	api.Get("/user-interests", r.interestHandler.List)
	api.Post("/user-interests/toggle", r.interestHandler.Toggle)

	// Not found handler
	r.app.Use(r.notFoundHandler)

	log.Println("Routes configured successfully")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000, // 1 year
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		XDNSPrefetchControl:   "off",
		XDownloadOptions:      "noopen",
		XPermittedCrossDomain: "none",
	}))

	// CORS middleware; credentials are required for the session cookie
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.cfg.CORSAllowOrigins,
		AllowMethods: []string{
			"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Requested-With",
			"X-Request-ID",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           utils.CORSMaxAge,
	}))

	// Compression middleware for performance
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Structured request logging
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/health"
		},
	}))

	// Prometheus request metrics
	if r.cfg.MetricsEnabled {
		r.app.Use(middleware.Metrics())
	}

	// Recovery middleware with custom error handling
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   "1.0.0",
			"service":   "odekake-event-calendar",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	requestID := c.Locals("requestid")

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}

// strictJSONDecode rejects request bodies carrying fields the target struct
// does not declare
func strictJSONDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
