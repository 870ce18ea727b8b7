// Package httpapi wires the HTTP transport (Gin) to the reminder service,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, compression,
// CORS, and security headers.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//
// Every reminder route is deliberately public: the original design declared a
// protected access level without enforcing it, so the unauthenticated posture
// is now an explicit per-route choice rather than an accident. The user id is
// a validated path input, not a session.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/seriestrack/go-reminder-backend/internal/config"
	"github.com/seriestrack/go-reminder-backend/internal/http/handlers"
	"github.com/seriestrack/go-reminder-backend/internal/http/middleware"
	"github.com/seriestrack/go-reminder-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine, then mounts the versioned public API under cfg.APIBasePath.
//
// Middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Gzip + body size limiter
//  6. Metrics and the /metrics endpoint
//  7. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Compression and a global body size limit (1 MiB)
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) CORS posture (allow all when no allowlist is configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Dependency injection: service ← entitlements/db/config
	ent := &services.SubscriptionEntitlements{
		DB:           db,
		FreeLimit:    cfg.Reminders.FreeLimit,
		PremiumLimit: cfg.Reminders.PremiumLimit,
	}
	svc := services.NewReminderService(db, ent)
	svc.FreeLimit = cfg.Reminders.FreeLimit
	svc.PremiumLimit = cfg.Reminders.PremiumLimit
	svc.NotifyHour = cfg.Reminders.NotifyHour
	svc.DefaultOriginCountry = cfg.Reminders.DefaultOriginCountry

	h := handlers.New(svc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api/v1"
	{
		api.GET("/users/:userId/reminders", h.ListReminders)
		api.POST("/users/:userId/reminders/toggle", h.ToggleReminder)
		api.GET("/users/:userId/reminders/can-create", h.CanCreateReminder)
		api.POST("/users/:userId/reminders/test-notification", h.SendTestNotification)
		api.GET("/users/:userId/reminders/stats", h.GetReminderStats)
		api.DELETE("/users/:userId/reminders/:reminderId", h.DeleteReminder)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
