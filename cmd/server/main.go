package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starsystem-server/internal/middleware"
	"starsystem-server/internal/planet"
	"starsystem-server/internal/server"
	serverHandlers "starsystem-server/internal/server/handlers"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/shared/database"
	"starsystem-server/internal/shared/logger"
	"starsystem-server/internal/shared/redis"
	"starsystem-server/internal/system"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Backends stay nil interfaces when off so health reports them disabled.
	var dbCheck, cacheCheck serverHandlers.Checker

	var store system.Store = system.NewMemoryStore()
	if cfg.Generation.Persist {
		db, err := database.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		if err := db.RunMigrations(ctx, cfg.Database.MigrationsPath); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		planetRepo := planet.NewRepository(db, slog.Default())
		store = system.NewRepository(db, planetRepo, slog.Default())
		dbCheck = db
	} else {
		log.Warn("Persistence disabled, systems are kept in memory only")
	}

	var cache system.Cache
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, running without cache", "error", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		cache = system.NewRedisCache(redisClient, cfg.Generation.CacheTTL)
		cacheCheck = redisClient
	}

	generator := system.NewGenerator(cfg.Generation.TextureSize, slog.Default())
	systemService := system.NewService(generator, store, cache, slog.Default())

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()

	routes := server.NewRoutes(cfg, systemService, rateLimiter, dbCheck, cacheCheck, slog.Default())
	cors := middleware.NewCORS(cfg.Frontend)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      cors.Middleware(routes.Setup()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"persist", cfg.Generation.Persist,
			"texture_size", cfg.Generation.TextureSize,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
