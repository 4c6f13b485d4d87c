// Package config loads application configuration from environment variables.
//
// It offers two complementary layers:
//
//   - Typed getters (Required, Optional, Bool, Int) and a Reader that builds
//     an immutable configuration snapshot from a Source. Empty values count as
//     unset. Booleans are true only for a case-insensitive "true"; numbers fall
//     back to their default when they do not parse. A Reader collects every
//     missing required key so startup can fail once with the full list.
//
//   - Struct loading (Load, MustLoad, LoadOrDefault) for tuning structs
//     annotated with `env` tags, built on `github.com/caarlos0/env/v11`. Each
//     struct type is parsed once and cached for the lifetime of the process.
//     LoadOrDefault falls back to the envDefault values when a variable does
//     not parse, so a bad tuning value degrades instead of stopping startup.
//
// `.env` files are read with `github.com/joho/godotenv` through LoadEnv and
// MustLoadEnv. Variables already present in the process environment win over
// file values.
//
// # Usage
//
//	if err := config.LoadEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
//		log.Fatalf("loading env: %v", err)
//	}
//
//	r := config.NewReader(config.OSEnv{})
//	db := DatabaseConfig{
//		URL:     r.Required("DATABASE_URL"),
//		Verbose: r.Bool("DB_VERBOSE", false),
//	}
//	if err := r.Err(); err != nil {
//		log.Fatalf("config: missing %v", config.MissingKeys(err))
//	}
//
//	var pool PoolConfig
//	if err := config.LoadOrDefault(&pool); err != nil {
//		log.Printf("pool tuning ignored: %v", err)
//	}
//
// # Error Handling
//
//   - ErrMissingRequired: matched by every *MissingVarError via errors.Is.
//   - ErrParsingConfig: failed to parse env vars into a struct.
//   - ErrLoadingEnvFile: an explicit .env path could not be read.
//   - ErrConfigNotLoaded, ErrNilPointer: misuse of Load.
//
// # Testing Helpers
//
// Use MapEnv as an in-memory Source, ResetCache to clear cached structs, and
// ForceReloadConfig to re-parse one struct after the environment changes.
package config
