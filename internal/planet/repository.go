package planet

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"starsystem-server/internal/models"
	"starsystem-server/internal/shared/database"
)

type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing planet repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) getExecutor(tx *database.Tx) database.Executor {
	if tx != nil {
		return tx
	}
	return r.db
}

// batchRow is one planet in the JSON document handed to the batch insert.
// Texture is base64 encoded by encoding/json and decoded again in SQL.
type batchRow struct {
	SystemID        uuid.UUID
	PlanetIndex     int
	Name            string
	Class           models.PlanetClass
	SemiMajorAxis   float64
	Eccentricity    float64
	Inclination     float64
	LongitudeOfNode float64
	MeanAnomaly     float64
	Mass            float64
	Radius          float64
	RadiusKm        float64
	Density         float64
	Iron            float64
	Silicate        float64
	Water           float64
	Hydrogen        float64
	Pressure        float64
	EquilibriumTemp float64
	SurfaceTemp     float64
	Color           string
	Texture         []byte
}

// CreatePlanetsBatch stores every planet of a system in one statement.
// textures must be aligned with planets.
func (r *Repository) CreatePlanetsBatch(ctx context.Context, systemID uuid.UUID, planets []models.Planet, textures [][]byte, tx *database.Tx) error {
	if len(planets) == 0 {
		return nil
	}
	if len(textures) != len(planets) {
		return fmt.Errorf("got %d textures for %d planets", len(textures), len(planets))
	}

	exec := r.getExecutor(tx)

	logger := r.logger.With(
		"component", "planet_repository",
		"operation", "create_planets_batch",
		"system_id", systemID,
		"count", len(planets),
	)
	logger.Debug("Creating planets in batch")

	rows := make([]batchRow, len(planets))
	for i, p := range planets {
		rows[i] = batchRow{
			SystemID:        systemID,
			PlanetIndex:     i,
			Name:            p.Name,
			Class:           p.Class,
			SemiMajorAxis:   p.SemiMajorAxis,
			Eccentricity:    p.Eccentricity,
			Inclination:     p.Inclination,
			LongitudeOfNode: p.LongitudeOfNode,
			MeanAnomaly:     p.MeanAnomaly,
			Mass:            p.Mass,
			Radius:          p.Radius,
			RadiusKm:        p.RadiusKm,
			Density:         p.Density,
			Iron:            p.Composition.Iron,
			Silicate:        p.Composition.Silicate,
			Water:           p.Composition.Water,
			Hydrogen:        p.Composition.Hydrogen,
			Pressure:        p.Pressure,
			EquilibriumTemp: p.EquilibriumTemp,
			SurfaceTemp:     p.SurfaceTemp,
			Color:           p.Color,
			Texture:         textures[i],
		}
	}

	planetsJSON, err := json.Marshal(rows)
	if err != nil {
		logger.Error("Failed to marshal planets to JSON", "error", err)
		return fmt.Errorf("failed to marshal planets: %w", err)
	}

	query := `
		INSERT INTO planets (
			system_id, planet_index, name, class,
			semi_major_axis, eccentricity, inclination, longitude_of_node, mean_anomaly,
			mass, radius, radius_km, density,
			iron, silicate, water, hydrogen,
			pressure, equilibrium_temp, surface_temp, color, texture
		)
		SELECT
			(data->>'SystemID')::uuid,
			(data->>'PlanetIndex')::integer,
			data->>'Name',
			data->>'Class',
			(data->>'SemiMajorAxis')::double precision,
			(data->>'Eccentricity')::double precision,
			(data->>'Inclination')::double precision,
			(data->>'LongitudeOfNode')::double precision,
			(data->>'MeanAnomaly')::double precision,
			(data->>'Mass')::double precision,
			(data->>'Radius')::double precision,
			(data->>'RadiusKm')::double precision,
			(data->>'Density')::double precision,
			(data->>'Iron')::double precision,
			(data->>'Silicate')::double precision,
			(data->>'Water')::double precision,
			(data->>'Hydrogen')::double precision,
			(data->>'Pressure')::double precision,
			(data->>'EquilibriumTemp')::double precision,
			(data->>'SurfaceTemp')::double precision,
			data->>'Color',
			decode(data->>'Texture', 'base64')
		FROM json_array_elements($1::json) AS data`

	result, err := exec.ExecContext(ctx, query, string(planetsJSON))
	if err != nil {
		logger.Error("Failed to batch create planets", "error", err)
		return fmt.Errorf("failed to batch create planets: %w", err)
	}

	created, err := result.RowsAffected()
	if err != nil {
		logger.Warn("Could not read affected rows", "error", err)
	}
	logger.Debug("Planets batch created successfully", "created", created)
	return nil
}

// GetPlanetsBySystemID returns the planets of a system in orbital order,
// without their textures.
func (r *Repository) GetPlanetsBySystemID(ctx context.Context, systemID uuid.UUID) ([]models.Planet, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_planets_by_system", "system_id", systemID)
	logger.Debug("Getting planets by system ID")

	query := `
		SELECT name, class,
			semi_major_axis, eccentricity, inclination, longitude_of_node, mean_anomaly,
			mass, radius, radius_km, density,
			iron, silicate, water, hydrogen,
			pressure, equilibrium_temp, surface_temp, color
		FROM planets
		WHERE system_id = $1
		ORDER BY planet_index
	`

	rows, err := r.db.QueryContext(ctx, query, systemID)
	if err != nil {
		logger.Error("Failed to query planets", "error", err)
		return nil, fmt.Errorf("failed to query planets: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	planets := []models.Planet{}
	for rows.Next() {
		var p models.Planet
		err := rows.Scan(
			&p.Name,
			&p.Class,
			&p.SemiMajorAxis,
			&p.Eccentricity,
			&p.Inclination,
			&p.LongitudeOfNode,
			&p.MeanAnomaly,
			&p.Mass,
			&p.Radius,
			&p.RadiusKm,
			&p.Density,
			&p.Composition.Iron,
			&p.Composition.Silicate,
			&p.Composition.Water,
			&p.Composition.Hydrogen,
			&p.Pressure,
			&p.EquilibriumTemp,
			&p.SurfaceTemp,
			&p.Color,
		)
		if err != nil {
			logger.Error("Failed to scan planet row", "error", err)
			return nil, fmt.Errorf("failed to scan planet: %w", err)
		}
		planets = append(planets, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Error during rows iteration", "error", err)
		return nil, fmt.Errorf("error iterating planets: %w", err)
	}

	logger.Debug("Planets retrieved", "count", len(planets))
	return planets, nil
}

// GetTexture returns the stored PNG for one planet, or nil when there is no
// such planet.
func (r *Repository) GetTexture(ctx context.Context, systemID uuid.UUID, index int) ([]byte, error) {
	logger := r.logger.With("component", "planet_repository", "operation", "get_texture", "system_id", systemID, "planet_index", index)
	logger.Debug("Getting planet texture")

	var png []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT texture FROM planets WHERE system_id = $1 AND planet_index = $2`,
		systemID, index,
	).Scan(&png)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("Planet not found")
			return nil, nil
		}
		logger.Error("Database error getting texture", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	logger.Debug("Texture retrieved", "size_bytes", len(png))
	return png, nil
}
