package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/storytime/storygen/pkg/logger"
)

// NewErrorHandler logs the error (warn for 4xx, error for 5xx) and renders
// it with JSONError. Request-scoped attributes such as the request ID come
// from the logger's context extractors.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		status := http.StatusInternalServerError
		var httpErr HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
		}

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		r := ctx.Request()
		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		_ = JSONError(err).Render(ctx.ResponseWriter(), r)
	}
}
