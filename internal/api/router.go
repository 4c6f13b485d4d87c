// Package api is the HTTP surface of the Story Generator backend.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/storytime/storygen/handler"
	"github.com/storytime/storygen/pkg/environment"
	"github.com/storytime/storygen/pkg/httpserver"
	"github.com/storytime/storygen/pkg/metrics"
	"github.com/storytime/storygen/pkg/requestid"
)

// Options configures the router. Zero values are usable.
type Options struct {
	Logger *slog.Logger
	Env    environment.Environment
	// Now is the clock used for health timestamps. Defaults to time.Now.
	Now func() time.Time
	// ReadinessChecks back GET /ready. Without checks the endpoint answers ALIVE.
	ReadinessChecks []func(context.Context) error
	// Metrics, when set, instruments every route and serves GET /metrics.
	Metrics *metrics.Collector
}

// NewRouter builds the service router.
//
//	GET /        service banner
//	GET /health  liveness with timestamp
//	GET /ready   readiness (database ping)
//	GET /metrics Prometheus metrics, only with Options.Metrics
func NewRouter(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	env := opts.Env
	if env == "" {
		env = environment.Development
	}
	h := &handlers{now: opts.Now}
	if h.now == nil {
		h.now = time.Now
	}
	errorHandler := handler.WithErrorHandler(handler.NewErrorHandler(log))

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		environment.Middleware(env),
		requestLogger(log),
		middleware.Recoverer,
	)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.NotFound(handler.Wrap(func(handler.Context) handler.Response {
		return handler.JSONError(handler.ErrNotFound)
	}))
	r.MethodNotAllowed(handler.Wrap(func(handler.Context) handler.Response {
		return handler.JSONError(handler.ErrMethodNotAllowed)
	}))

	r.Get("/", handler.Wrap(h.root, errorHandler))
	r.Get("/health", handler.Wrap(h.health, errorHandler))
	r.Get("/ready", httpserver.HealthCheckHandler(log, opts.ReadinessChecks...))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return r
}
