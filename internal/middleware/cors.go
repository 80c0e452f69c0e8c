package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"starsystem-server/internal/shared/config"
)

type CORSMiddleware struct {
	*cors.Cors
}

var corsMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}

func NewCORS(cfg config.FrontendConfig) *CORSMiddleware {
	logger := slog.With("component", "cors", "operation", "setup")

	allowedOrigins := []string{cfg.URL}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		// Texture URLs are loaded straight into canvases and WebGL.
		ExposedHeaders: []string{"Content-Length"},
		Debug:          cfg.CORSDebug,
	})

	logger.Info("CORS middleware configured",
		"allowed_origins", allowedOrigins,
		"allowed_methods", corsMethods,
		"debug_mode", cfg.CORSDebug,
	)

	return &CORSMiddleware{c}
}

func (c *CORSMiddleware) Middleware(h http.Handler) http.Handler {
	return c.Cors.Handler(h)
}
