package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"starsystem-server/internal/shared/config"
)

// Init installs the process-wide slog logger from config.GlobalConfig.
func Init() {
	if config.GlobalConfig == nil {
		panic("config must be initialized before logger")
	}

	logConfig := config.GlobalConfig.Logging
	slog.SetDefault(New(os.Stdout, logConfig))

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", logConfig.Level,
		"json_format", useJSON(logConfig),
		"environment", config.GlobalConfig.Server.Environment,
	)
}

// New builds a logger writing to w. Production environments and
// LOG_FORMAT=json select the JSON handler.
func New(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	if useJSON(cfg) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func useJSON(cfg config.LoggingConfig) bool {
	return cfg.JSONFormat || strings.EqualFold(cfg.Format, "json")
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
