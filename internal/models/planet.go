package models

import "math"

type PlanetClass string

const (
	PlanetTerrestrial PlanetClass = "Terrestrial"
	PlanetMiniNeptune PlanetClass = "Mini-Neptune"
	PlanetIceGiant    PlanetClass = "Ice Giant"
	PlanetGasGiant    PlanetClass = "Gas Giant"
)

// IsGiant reports whether the class is a true giant (gas or ice).
func (c PlanetClass) IsGiant() bool {
	return c == PlanetGasGiant || c == PlanetIceGiant
}

// HasEnvelope reports whether the class is dominated by a thick volatile
// envelope: every giant plus mini-Neptunes.
func (c PlanetClass) HasEnvelope() bool {
	return c.IsGiant() || c == PlanetMiniNeptune
}

// CompositionTolerance bounds |sum - 1| for a normalized Composition.
const CompositionTolerance = 1e-9

// Composition holds mass fractions. Values handed out by generators always
// sum to 1.
type Composition struct {
	Iron     float64 `json:"iron"`
	Silicate float64 `json:"silicate"`
	Water    float64 `json:"water"`
	Hydrogen float64 `json:"hydrogen"`
}

func (c Composition) Sum() float64 {
	return c.Iron + c.Silicate + c.Water + c.Hydrogen
}

// Normalized scales the fractions to sum to 1. A zero composition falls back
// to a rocky 0.7 silicate / 0.3 iron split.
func (c Composition) Normalized() Composition {
	sum := c.Sum()
	if sum <= 0 || math.IsNaN(sum) {
		return Composition{Iron: 0.3, Silicate: 0.7}
	}
	return Composition{
		Iron:     c.Iron / sum,
		Silicate: c.Silicate / sum,
		Water:    c.Water / sum,
		Hydrogen: c.Hydrogen / sum,
	}
}

// Valid reports whether every fraction is in [0,1] and the sum is 1.
func (c Composition) Valid() bool {
	for _, f := range []float64{c.Iron, c.Silicate, c.Water, c.Hydrogen} {
		if f < 0 || f > 1 || math.IsNaN(f) {
			return false
		}
	}
	return math.Abs(c.Sum()-1) <= CompositionTolerance
}

// Orbit is a slot produced by the orbital architecture generator. It is
// fixed for the lifetime of the system.
type Orbit struct {
	SemiMajorAxis float64 `json:"semi_major_axis"` // AU
	Eccentricity  float64 `json:"eccentricity"`
	Inclination   float64 `json:"inclination"` // degrees
}

type Planet struct {
	Name string `json:"name"`

	Orbit
	LongitudeOfNode float64 `json:"longitude_of_node"` // radians
	MeanAnomaly     float64 `json:"mean_anomaly"`      // radians

	Class           PlanetClass `json:"class"`
	Mass            float64     `json:"mass"`   // Earth masses
	Radius          float64     `json:"radius"` // Earth radii
	RadiusKm        float64     `json:"radius_km"`
	Density         float64     `json:"density"` // g/cm³
	Composition     Composition `json:"composition"`
	Pressure        float64     `json:"pressure"` // atm
	EquilibriumTemp float64     `json:"equilibrium_temperature"`
	SurfaceTemp     float64     `json:"surface_temperature"`
	Color           string      `json:"color"`

	Texture *Texture `json:"-"`
}
