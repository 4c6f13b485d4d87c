// Package httpserver runs an http.Handler with graceful shutdown, timeouts
// from the environment, lifecycle hooks and slog logging.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM is received or
// the listener fails, then calls Shutdown with the configured deadline.
// Listener failures are joined with ErrStart and shutdown failures with
// ErrShutdown; inspect them with errors.Is.
//
// HealthCheckHandler serves liveness (no checks) and readiness (one or more
// dependency checks) endpoints.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//	cfg.Addr = ":8787"
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
