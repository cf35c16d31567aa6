package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/iudanet/ajustaestoque/internal/models"
	"github.com/iudanet/ajustaestoque/internal/server/handlers"
	"github.com/iudanet/ajustaestoque/internal/server/middleware"
)

// Пути API, которые использует клиент
const (
	PathLogin       = "/auth/login"
	PathUpdateStock = "/estoque/update-stock"
	PathProducts    = "/produtos"
	PathHealth      = "/health"

	PathShipmentFactory  = "/saida-fabrica"
	PathShipmentWarranty = "/saida-garantia"
)

// RateLimit holds per-IP limits for the router.
type RateLimit struct {
	Requests      int
	LoginRequests int
	Window        time.Duration
}

// Config holds the configuration for creating a router.
type Config struct {
	Logger         *slog.Logger
	AuthHandler    *handlers.AuthHandler
	StockHandler   *handlers.StockHandler
	Shipments      *handlers.ShipmentHandler
	HealthHandler  *handlers.HealthHandler
	AllowedOrigins []string
	JWT            handlers.JWTConfig
	RateLimit      RateLimit
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.RecoveryMiddleware(cfg.Logger))
	r.Use(chimw.RequestID)
	r.Use(middleware.LoggingWithSkip(cfg.Logger, []string{PathHealth}))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimitByPathMiddleware(
		[]middleware.PathRateLimit{
			{Path: PathLogin, Rate: cfg.RateLimit.LoginRequests, Window: cfg.RateLimit.Window},
		},
		cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.Logger,
	))

	// PUBLIC routes (no auth required)
	r.Get(PathHealth, cfg.HealthHandler.Health)
	r.Head(PathHealth, cfg.HealthHandler.Health)
	r.Post(PathLogin, cfg.AuthHandler.Login)

	// AUTHENTICATED routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Logger, cfg.JWT))

		r.Post(PathUpdateStock, cfg.StockHandler.UpdateStock)
		r.Get(PathProducts, cfg.StockHandler.ListProducts)
		r.Get("/estoque/{sku}/ajustes", cfg.StockHandler.ListAdjustments)

		r.Post(PathShipmentFactory, cfg.Shipments.Launch(models.ShipmentFactory))
		r.Post(PathShipmentWarranty, cfg.Shipments.Launch(models.ShipmentWarranty))
	})

	return r
}
