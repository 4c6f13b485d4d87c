package api

import (
	"time"

	"github.com/storytime/storygen/handler"
)

const (
	ServiceName    = "Story Generator Backend API"
	ServiceVersion = "1.0.0"
)

// timestampLayout is ISO-8601 with millisecond precision, as produced by
// JavaScript's Date.toISOString for UTC times.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type handlers struct {
	now func() time.Time
}

func (h *handlers) root(handler.Context) handler.Response {
	return handler.JSON(RootResponse{
		Message: ServiceName,
		Version: ServiceVersion,
		Status:  "running",
	})
}

func (h *handlers) health(handler.Context) handler.Response {
	return handler.JSON(HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(timestampLayout),
	})
}
