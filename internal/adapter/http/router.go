package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gestora/anticipos/internal/adapter/http/handler"
	"github.com/gestora/anticipos/internal/adapter/http/middleware"
	"github.com/gestora/anticipos/internal/infrastructure/auth"
	"github.com/gestora/anticipos/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PartnerHandler   *handler.PartnerHandler
	EntryHandler     *handler.EntryHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	AuthHandler      *handler.AuthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	JWTManager       *auth.JWTManager
	Logger           zerolog.Logger
	RateLimit        float64
	RateBurst        int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery(cfg.Logger))

	if cfg.RateLimit > 0 {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst).Wrap)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.AuthHandler != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			if cfg.JWTManager != nil {
				r.Use(middleware.Auth(cfg.JWTManager))
			}

			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger).Wrap)
			}

			r.Route("/partners", func(r chi.Router) {
				r.Post("/", cfg.PartnerHandler.Create)

				r.Route("/{kind}", func(r chi.Router) {
					r.Get("/", cfg.PartnerHandler.List)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", cfg.PartnerHandler.Get)
						r.Get("/ledger", cfg.LedgerHandler.Get)
						r.Get("/ledger/projection", cfg.LedgerHandler.Projection)

						r.Route("/advances", func(r chi.Router) {
							r.Post("/", cfg.EntryHandler.Create)
							r.Put("/{entryID}", cfg.EntryHandler.Update)
							r.Delete("/{entryID}", cfg.EntryHandler.Delete)
						})
					})
				})
			})
		})
	})

	return r
}
