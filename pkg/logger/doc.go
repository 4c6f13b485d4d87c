// Package logger builds *slog.Logger instances with functional options,
// consistent attribute helpers and automatic injection of values stored in
// context.Context (such as the request ID).
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the format and
// wraps it with LogHandlerDecorator, which runs every registered
// ContextExtractor on each Handle call.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("NODE_ENV"), "storygen-api"),
//		logger.WithDebug(cfg.Features.EnableDebugLogging),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "server started", logger.Addr(":8787"))
//
// # Options
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets.
//   - WithDebug: toggles debug level after a preset.
//   - WithFormat / WithTextFormatter / WithJSONFormatter / FromConfig: output format.
//   - WithLevel, WithOutput, WithAttr, WithContextExtractors.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
