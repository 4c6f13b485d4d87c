package metrics

import (
	"math"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds collector settings.
type Config struct {
	Namespace string    `env:"METRICS_NAMESPACE" envDefault:"storygen"`
	Buckets   []float64 `env:"METRICS_DURATION_BUCKETS" envSeparator:","`
}

// DefaultBuckets covers request latencies from 5ms to 10s.
var DefaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

const unmatchedRoute = "unmatched"

// Collector records HTTP request metrics into a private registry.
type Collector struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics together with
// the Go runtime and process collectors.
func NewCollector(cfg Config) *Collector {
	if cfg.Namespace == "" {
		cfg.Namespace = "storygen"
	}
	cfg.Buckets = normalizeBuckets(cfg.Buckets)

	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   cfg.Buckets,
			},
			[]string{"method", "route"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.requestsTotal,
		c.requestDuration,
		c.inFlight,
	)
	return c
}

// Registry returns the underlying registry, e.g. to register service metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Middleware records count, duration and in-flight gauge for each request.
// It must run inside a chi router for route labels to resolve. A panicking
// handler is counted as a 500 and the panic is passed on to the recoverer.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		c.inFlight.Inc()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			c.inFlight.Dec()
			rec := recover()

			status := ww.Status()
			switch {
			case rec != nil:
				status = http.StatusInternalServerError
			case status == 0:
				status = http.StatusOK
			}
			route := routePattern(r)
			c.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			c.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(ww, r)
	})
}

// normalizeBuckets sorts bounds and drops duplicates and NaN so the histogram
// never rejects them. An empty result means DefaultBuckets.
func normalizeBuckets(in []float64) []float64 {
	out := make([]float64, 0, len(in))
	for _, b := range in {
		if !math.IsNaN(b) {
			out = append(out, b)
		}
	}
	slices.Sort(out)
	out = slices.Compact(out)
	if len(out) == 0 {
		return DefaultBuckets
	}
	return out
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}
