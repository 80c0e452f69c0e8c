package system

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"starsystem-server/internal/orbit"
	"starsystem-server/internal/rng"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/texture"
)

type Service struct {
	generator *Generator
	store     Store
	cache     Cache
	logger    *slog.Logger
}

func NewService(generator *Generator, store Store, cache Cache, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	if cache == nil {
		cache = NoopCache{}
	}
	return &Service{
		generator: generator,
		store:     store,
		cache:     cache,
		logger:    logger,
	}
}

// Generate runs the full pipeline for req, stores the result and returns it
// with encoded textures attached.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Record, error) {
	seed := rng.NewSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	logger := s.logger.With(
		"component", "system_service",
		"operation", "generate_system",
		"seed", seed,
		"spectral_class", req.SpectralClass,
		"density", req.Density,
	)
	logger.Debug("Generating system")

	started := time.Now()
	st, data := s.generator.Generate(rng.New(seed), req.SpectralClass, req.Density)

	rec := &Record{
		ID:            uuid.New(),
		Seed:          seed,
		SpectralClass: req.SpectralClass,
		Density:       req.Density,
		Star:          st,
		Zones:         orbit.ZonesFor(st.Luminosity),
		Planets:       data.Planets,
		CreatedAt:     time.Now().UTC(),
		Textures:      make([][]byte, len(data.Planets)),
	}
	for i, p := range data.Planets {
		png, err := texture.EncodePNG(p.Texture)
		if err != nil {
			return nil, errors.WrapInternal("failed to encode planet texture", err)
		}
		rec.Textures[i] = png
	}

	if err := s.store.Save(ctx, rec); err != nil {
		return nil, errors.WrapExternal("failed to store system", err)
	}
	if err := s.cache.SetSystem(ctx, rec); err != nil {
		logger.Warn("Failed to cache system", "error", err)
	}

	logger.Info("System generated",
		"system_id", rec.ID,
		"star", st.Name,
		"class", st.SpectralClass,
		"planets", len(rec.Planets),
		"elapsed", time.Since(started),
	)
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	logger := s.logger.With("component", "system_service", "operation", "get_system", "system_id", id)

	rec, err := s.cache.GetSystem(ctx, id)
	if err != nil {
		logger.Warn("Cache read failed", "error", err)
	}
	if rec != nil {
		logger.Debug("System served from cache")
		return rec, nil
	}

	rec, err = s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.WrapExternal("failed to load system", err)
	}
	if rec == nil {
		return nil, errors.NotFoundf("system %s not found", id)
	}

	if err := s.cache.SetSystem(ctx, rec); err != nil {
		logger.Warn("Failed to cache system", "error", err)
	}
	return rec, nil
}

// Texture returns the PNG of one planet's texture.
func (s *Service) Texture(ctx context.Context, id uuid.UUID, index int) ([]byte, error) {
	logger := s.logger.With("component", "system_service", "operation", "get_texture", "system_id", id, "planet_index", index)

	if index < 0 {
		return nil, errors.Validationf("planet index %d out of range", index)
	}

	png, err := s.cache.GetTexture(ctx, id, index)
	if err != nil {
		logger.Warn("Cache read failed", "error", err)
	}
	if png != nil {
		return png, nil
	}

	png, err = s.store.Texture(ctx, id, index)
	if err != nil {
		return nil, errors.WrapExternal("failed to load texture", err)
	}
	if png == nil {
		return nil, errors.NotFoundf("planet %d of system %s not found", index, id)
	}

	if err := s.cache.SetTexture(ctx, id, index, png); err != nil {
		logger.Warn("Failed to cache texture", "error", err)
	}
	return png, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	logger := s.logger.With("component", "system_service", "operation", "delete_system", "system_id", id)

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return errors.WrapExternal("failed to delete system", err)
	}
	if !deleted {
		return errors.NotFoundf("system %s not found", id)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.Warn("Failed to invalidate cache", "error", err)
	}
	logger.Info("System deleted")
	return nil
}
