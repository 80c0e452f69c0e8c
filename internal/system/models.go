package system

import (
	"time"

	"github.com/google/uuid"

	"starsystem-server/internal/models"
	"starsystem-server/internal/orbit"
)

// Record is a generated system as stored and served.
type Record struct {
	ID            uuid.UUID            `json:"id"`
	Seed          uint64               `json:"seed"`
	SpectralClass models.SpectralClass `json:"requested_class"`
	Density       models.DensityTier   `json:"density"`
	Star          models.Star          `json:"star"`
	Zones         orbit.Zones          `json:"zones"`
	Planets       []models.Planet      `json:"planets"`
	CreatedAt     time.Time            `json:"created_at"`

	// Textures holds the PNG encoding of each planet's texture, aligned with
	// Planets. Records read back from storage leave it empty.
	Textures [][]byte `json:"-"`
}

// GenerateRequest selects what to generate. A nil Seed draws a fresh one.
type GenerateRequest struct {
	SpectralClass models.SpectralClass
	Density       models.DensityTier
	Seed          *uint64
}
