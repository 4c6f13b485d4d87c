// Package pg opens PostgreSQL connection pools with github.com/jackc/pgx/v5
// and exposes a readiness check for them.
//
// Pool tuning comes from PG_* environment variables (see Config); the
// connection string is the service's DATABASE_URL.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//	cfg.ConnectionString = settings.Database.URL
//
//	pool, err := pg.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	router.Get("/ready", httpserver.HealthCheckHandler(log, pg.Healthcheck(pool)))
//
// Open never dials; Connect dials and pings with retries.
package pg
