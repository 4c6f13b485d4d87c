package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/storytime/storygen/internal/api"
	"github.com/storytime/storygen/internal/settings"
	"github.com/storytime/storygen/pkg/config"
	"github.com/storytime/storygen/pkg/environment"
	"github.com/storytime/storygen/pkg/httpserver"
	"github.com/storytime/storygen/pkg/logger"
	"github.com/storytime/storygen/pkg/metrics"
	"github.com/storytime/storygen/pkg/pg"
	"github.com/storytime/storygen/pkg/requestid"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Story Generator API server on PORT (default 8787).

All required variables must be set; the server refuses to start and lists
every missing one otherwise. By default the database pool is opened lazily,
so an unreachable database is reported by GET /ready instead of blocking
startup. With --wait-db the database is pinged first, retrying
PG_RETRY_ATTEMPTS times, and the server does not start until it answers.

Malformed tuning values (HTTP_*, PG_*, METRICS_*, LOG_FORMAT) are logged
and replaced by their defaults.

Examples:
  # Start with the default .env
  storygen serve

  # Start with explicit env files
  storygen serve --env-file .env --env-file .env.local

  # Wait for the database before accepting traffic
  storygen serve --wait-db`,
	RunE: runServe,
}

var waitForDB bool

func init() {
	serveCmd.Flags().BoolVar(&waitForDB, "wait-db", false, "ping the database before serving, retrying PG_RETRY_ATTEMPTS times")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFiles(envFiles); err != nil {
		return err
	}

	cfg, err := settings.LoadBackend(config.OSEnv{})
	if err != nil {
		log := logger.New(logger.WithDevelopment(serviceName), logger.WithOutput(cmd.ErrOrStderr()))
		log.Error("missing required configuration",
			logger.Keys(config.MissingKeys(err)),
			logger.Component("config"),
		)
		return errors.Join(errReported, err)
	}

	log := newLogger(cfg, cmd.OutOrStdout())
	logger.SetAsDefault(log)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return serve(ctx, cfg, log, waitForDB)
}

func newLogger(cfg settings.Backend, w io.Writer) *slog.Logger {
	var logCfg logger.Config
	loadErr := config.LoadOrDefault(&logCfg)

	log := logger.New(
		logger.WithEnvironment(cfg.App.NodeEnv, serviceName),
		logger.WithDebug(cfg.Features.EnableDebugLogging),
		logger.FromConfig(logCfg),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	if loadErr != nil {
		log.Warn("invalid logger configuration, using defaults", logger.Error(loadErr), logger.Component("config"))
	}
	if logCfg.Format != "" && !logCfg.Format.Valid() {
		log.Warn("unknown LOG_FORMAT ignored",
			slog.String("format", string(logCfg.Format)),
			logger.Component("config"),
		)
	}
	return log
}

// loadTuning fills v from the environment. A malformed value is logged and v
// gets its defaults instead; only non-parse failures are returned.
func loadTuning[T any](log *slog.Logger, v *T) error {
	err := config.LoadOrDefault(v)
	if errors.Is(err, config.ErrParsingConfig) {
		log.Warn("invalid tuning configuration, using defaults", logger.Error(err), logger.Component("config"))
		return nil
	}
	return err
}

func openPool(ctx context.Context, cfg pg.Config, wait bool) (*pgxpool.Pool, error) {
	if wait {
		return pg.Connect(ctx, cfg)
	}
	return pg.Open(ctx, cfg)
}

func serve(ctx context.Context, cfg settings.Backend, log *slog.Logger, waitDB bool) error {
	var pgCfg pg.Config
	if err := loadTuning(log, &pgCfg); err != nil {
		return err
	}
	pgCfg.ConnectionString = cfg.Database.URL

	pool, err := openPool(ctx, pgCfg, waitDB)
	if err != nil {
		log.Error("failed to open database pool", logger.Error(err), logger.Component("pg"))
		return errors.Join(errReported, err)
	}
	defer pool.Close()

	var srvCfg httpserver.Config
	if err := loadTuning(log, &srvCfg); err != nil {
		return err
	}
	srvCfg.Addr = cfg.Addr()

	opts := api.Options{
		Logger:          log,
		Env:             environment.Parse(cfg.App.NodeEnv),
		ReadinessChecks: []func(context.Context) error{pg.Healthcheck(pool)},
	}
	if cfg.Features.EnableTelemetry {
		var mCfg metrics.Config
		if err := loadTuning(log, &mCfg); err != nil {
			return err
		}
		opts.Metrics = metrics.NewCollector(mCfg)
	}
	router := api.NewRouter(opts)

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log),
		httpserver.WithServer(&http.Server{
			ErrorLog: slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		}),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Debug("configuration loaded",
				slog.Bool("analytics", cfg.Features.EnableAnalytics),
				slog.Bool("telemetry", cfg.Features.EnableTelemetry),
				slog.Bool("wait_db", waitDB),
				slog.String("posthog_host", cfg.PostHog.Host),
			)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			pool.Close()
			l.Info("database pool closed", logger.Component("pg"))
		}),
	)
	if err := srv.Run(ctx, router); err != nil {
		return errors.Join(errReported, err)
	}
	return nil
}
