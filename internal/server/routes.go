package server

import (
	"log/slog"
	"net/http"

	"starsystem-server/internal/middleware"
	serverHandlers "starsystem-server/internal/server/handlers"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/system"
	systemHandlers "starsystem-server/internal/system/handlers"
)

type Routes struct {
	cfg           *config.Config
	systemService *system.Service
	rateLimiter   *middleware.RateLimiter
	db            serverHandlers.Checker
	cache         serverHandlers.Checker
	logger        *slog.Logger
}

// NewRoutes wires the HTTP surface. db and cache may be nil when the
// corresponding backend is turned off.
func NewRoutes(cfg *config.Config, systemService *system.Service, rateLimiter *middleware.RateLimiter, db, cache serverHandlers.Checker, logger *slog.Logger) *Routes {
	return &Routes{
		cfg:           cfg,
		systemService: systemService,
		rateLimiter:   rateLimiter,
		db:            db,
		cache:         cache,
		logger:        logger,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.cache)
	systemHandler := systemHandlers.NewSystemHandler(r.systemService, r.cfg.Generation.DefaultDensity)

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.Handle("POST /api/systems", r.rateLimiter.Middleware(http.HandlerFunc(systemHandler.Generate)))
	mux.HandleFunc("GET /api/systems/{id}", systemHandler.Get)
	mux.HandleFunc("GET /api/systems/{id}/planets/{index}/texture.png", systemHandler.Texture)

	adminEndpoints := []string{}
	if r.cfg.AdminEnabled() {
		mux.Handle("DELETE /api/systems/{id}", middleware.RequireAdmin(r.cfg.Auth.JWTSecret, http.HandlerFunc(systemHandler.Delete)))
		adminEndpoints = append(adminEndpoints, "DELETE /api/systems/{id}")
	} else {
		logger.Warn("JWT_SECRET not set, admin endpoints disabled")
	}

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/systems", "/api/systems/{id}", "/api/systems/{id}/planets/{index}/texture.png"},
		"admin_endpoints", adminEndpoints,
	)

	return mux
}
