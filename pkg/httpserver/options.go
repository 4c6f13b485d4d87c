package httpserver

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Server. Options that receive invalid values panic,
// since they are only built from code or from already validated Config.
type Option func(*config)

func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: empty listen address")
	}
	return func(c *config) { c.addr = addr }
}

func WithReadTimeout(d time.Duration) Option {
	mustPositive("read timeout", d)
	return func(c *config) { c.readTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	mustPositive("write timeout", d)
	return func(c *config) { c.writeTimeout = d }
}

// WithIdleTimeout bounds how long keep-alive connections wait for the next request.
func WithIdleTimeout(d time.Duration) Option {
	mustPositive("idle timeout", d)
	return func(c *config) { c.idleTimeout = d }
}

// WithShutdownTimeout bounds graceful shutdown; in-flight requests still
// running afterwards are cut off.
func WithShutdownTimeout(d time.Duration) Option {
	mustPositive("shutdown timeout", d)
	return func(c *config) { c.shutdownTimeout = d }
}

// WithServer runs srv instead of a zero http.Server, e.g. to route its
// ErrorLog into slog. Addr and timeouts already set on srv win over options.
func WithServer(srv *http.Server) Option {
	if srv == nil {
		panic("httpserver: nil *http.Server")
	}
	return func(c *config) { c.server = srv }
}

// WithLogger sets the lifecycle logger. Nil keeps logs discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStartHook runs h right before the listener starts.
func WithStartHook(h func(*slog.Logger)) Option {
	mustHook("start", h)
	return func(c *config) { c.startHooks = append(c.startHooks, h) }
}

// WithStopHook runs h once graceful shutdown has finished, e.g. to release
// resources the handlers used.
func WithStopHook(h func(*slog.Logger)) Option {
	mustHook("stop", h)
	return func(c *config) { c.stopHooks = append(c.stopHooks, h) }
}

func mustPositive(name string, d time.Duration) {
	if d <= 0 {
		panic(fmt.Sprintf("httpserver: %s must be > 0, got %s", name, d))
	}
}

func mustHook(name string, h func(*slog.Logger)) {
	if h == nil {
		panic("httpserver: nil " + name + " hook")
	}
}
