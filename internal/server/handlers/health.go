package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"starsystem-server/internal/shared/response"
)

const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
	statusDisabled     = "disabled"
)

// Checker is a backing service that can report its health.
type Checker interface {
	Health(ctx context.Context) error
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
}

// HealthHandler reports the state of storage and cache. A nil Checker means
// that backend is turned off.
type HealthHandler struct {
	db    Checker
	cache Checker
}

func NewHealthHandler(db, cache Checker) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func check(ctx context.Context, logger *slog.Logger, name string, c Checker) string {
	if c == nil {
		return statusDisabled
	}
	if err := c.Health(ctx); err != nil {
		logger.Warn("Health check failed", "backend", name, "error", err)
		return statusDisconnected
	}
	return statusConnected
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "health")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Database:  check(ctx, logger, "database", h.db),
		Redis:     check(ctx, logger, "redis", h.cache),
	}

	// Generation works without either backend, so only a configured backend
	// that fails degrades the service.
	status := http.StatusOK
	if resp.Database == statusDisconnected || resp.Redis == statusDisconnected {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	response.Success(w, status, resp)
}
