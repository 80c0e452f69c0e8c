package system

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"starsystem-server/internal/orbit"
	"starsystem-server/internal/planet"
	"starsystem-server/internal/shared/database"
)

// Repository is the postgres Store.
type Repository struct {
	db      *database.DB
	planets *planet.Repository
	logger  *slog.Logger
}

func NewRepository(db *database.DB, planets *planet.Repository, logger *slog.Logger) *Repository {
	logger.Debug("Initializing system repository")

	return &Repository{
		db:      db,
		planets: planets,
		logger:  logger,
	}
}

// Save writes the system row and all of its planets in one transaction.
func (r *Repository) Save(ctx context.Context, rec *Record) error {
	logger := r.logger.With(
		"component", "system_repository",
		"operation", "save_system",
		"system_id", rec.ID,
		"planet_count", len(rec.Planets),
	)
	logger.Debug("Saving system")

	tx, err := r.db.BeginTxContext(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction", "error", err)
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			logger.Error("Failed to rollback transaction", "error", err)
		}
	}()

	query := `
		INSERT INTO systems (
			id, seed, requested_class, density,
			star_name, star_mass, star_radius, star_luminosity, star_temperature,
			star_metallicity, star_abs_magnitude, spectral_class, star_color,
			planet_count, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	s := rec.Star
	_, err = tx.ExecContext(ctx, query,
		rec.ID,
		int64(rec.Seed),
		rec.SpectralClass,
		rec.Density,
		s.Name,
		s.Mass,
		s.Radius,
		s.Luminosity,
		s.Temperature,
		s.Metallicity,
		s.AbsMagnitude,
		s.SpectralClass,
		s.Color,
		len(rec.Planets),
		rec.CreatedAt,
	)
	if err != nil {
		logger.Error("Failed to create system", "error", err)
		return fmt.Errorf("failed to create system: %w", err)
	}

	if err := r.planets.CreatePlanetsBatch(ctx, rec.ID, rec.Planets, rec.Textures, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Failed to commit system transaction", "error", err)
		return fmt.Errorf("failed to commit system: %w", err)
	}

	logger.Info("System saved successfully")
	return nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	logger := r.logger.With("component", "system_repository", "operation", "get_system", "system_id", id)
	logger.Debug("Getting system by ID")

	query := `
		SELECT id, seed, requested_class, density,
			star_name, star_mass, star_radius, star_luminosity, star_temperature,
			star_metallicity, star_abs_magnitude, spectral_class, star_color,
			created_at
		FROM systems
		WHERE id = $1
	`

	var rec Record
	var seed int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&seed,
		&rec.SpectralClass,
		&rec.Density,
		&rec.Star.Name,
		&rec.Star.Mass,
		&rec.Star.Radius,
		&rec.Star.Luminosity,
		&rec.Star.Temperature,
		&rec.Star.Metallicity,
		&rec.Star.AbsMagnitude,
		&rec.Star.SpectralClass,
		&rec.Star.Color,
		&rec.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("System not found")
			return nil, nil
		}
		logger.Error("Database error getting system", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}
	rec.Seed = uint64(seed)
	rec.Zones = orbit.ZonesFor(rec.Star.Luminosity)

	rec.Planets, err = r.planets.GetPlanetsBySystemID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Debug("System retrieved", "planet_count", len(rec.Planets))
	return &rec, nil
}

func (r *Repository) Texture(ctx context.Context, id uuid.UUID, index int) ([]byte, error) {
	return r.planets.GetTexture(ctx, id, index)
}

// Delete removes a system; its planets go with it through the foreign key.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	logger := r.logger.With("component", "system_repository", "operation", "delete_system", "system_id", id)
	logger.Debug("Deleting system")

	result, err := r.db.ExecContext(ctx, `DELETE FROM systems WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete system", "error", err)
		return false, fmt.Errorf("failed to delete system: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.Error("Failed to read affected rows", "error", err)
		return false, fmt.Errorf("failed to delete system: %w", err)
	}

	logger.Info("System deleted", "deleted", affected > 0)
	return affected > 0, nil
}
