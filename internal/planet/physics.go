package planet

import (
	"math"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

const (
	earthMassGrams = 5.972e27
	earthRadiusKm  = 6371.0
	cmPerKm        = 100000.0

	ironDensity     = 7.0 // g/cm³
	silicateDensity = 3.5
	waterDensity    = 1.5

	// DesiccationTemp is the surface temperature above which terrestrial
	// worlds lose all water.
	DesiccationTemp = 450.0
)

// Environment is the stellar and zonal context shared by every slot of a
// system.
type Environment struct {
	Luminosity     float64
	StellarMass    float64
	FrostLine      float64
	HabitableInner float64
	HabitableOuter float64
}

// EquilibriumTemperature is the blackbody temperature at a AU.
func EquilibriumTemperature(luminosity, a float64) float64 {
	return 278 * math.Pow(luminosity, 0.25) / math.Sqrt(a)
}

// Classify rolls a planet class for a slot at a AU.
func Classify(src *rng.Source, a float64, env Environment) models.PlanetClass {
	r := src.Float64()
	var class models.PlanetClass
	switch {
	case a >= env.HabitableInner && a <= env.HabitableOuter:
		switch {
		case r < 0.98:
			class = models.PlanetTerrestrial
		case r < 0.99:
			class = models.PlanetMiniNeptune
		default:
			class = models.PlanetGasGiant
		}
	case a > env.FrostLine:
		switch {
		case r < 0.40:
			class = models.PlanetGasGiant
		case r < 0.75:
			class = models.PlanetIceGiant
		case r < 0.98:
			class = models.PlanetMiniNeptune
		default:
			class = models.PlanetTerrestrial
		}
	default:
		switch {
		case r < 0.03:
			class = models.PlanetGasGiant
		case r < 0.08:
			class = models.PlanetIceGiant
		case r < 0.25:
			class = models.PlanetMiniNeptune
		default:
			class = models.PlanetTerrestrial
		}
	}

	// Low-mass stars rarely retain enough disk mass for a gas giant.
	if env.StellarMass < 0.5 && class == models.PlanetGasGiant {
		d := src.Float64()
		switch {
		case d < 0.5:
			class = models.PlanetMiniNeptune
		case d < 0.85:
			class = models.PlanetTerrestrial
		}
	}
	return class
}

// massRanges are the Earth-mass bounds sampled log-uniformly per class.
var massRanges = map[models.PlanetClass][2]float64{
	models.PlanetGasGiant:    {50, 3000},
	models.PlanetIceGiant:    {10, 50},
	models.PlanetMiniNeptune: {2, 15},
	models.PlanetTerrestrial: {0.05, 8},
}

func MassRange(class models.PlanetClass) (min, max float64) {
	r, ok := massRanges[class]
	if !ok {
		r = massRanges[models.PlanetTerrestrial]
	}
	return r[0], r[1]
}

func SampleMass(src *rng.Source, class models.PlanetClass) float64 {
	lo, hi := MassRange(class)
	return src.LogUniform(lo, hi)
}

// SampleComposition draws normalized bulk fractions for class. Terrestrial
// water depends on the equilibrium temperature and on whether the slot can
// receive volatiles from the outer system.
func SampleComposition(src *rng.Source, class models.PlanetClass, a, eqTemp float64, env Environment) models.Composition {
	var c models.Composition
	switch class {
	case models.PlanetGasGiant:
		c.Hydrogen = src.Uniform(0.85, 0.98)
		c.Water = src.Uniform(0.01, 0.10)
		c.Silicate = src.Uniform(0.005, 0.03)
		c.Iron = src.Uniform(0.005, 0.03)
	case models.PlanetIceGiant:
		c.Hydrogen = src.Uniform(0.10, 0.25)
		c.Water = src.Uniform(0.40, 0.70)
		c.Silicate = src.Uniform(0.15, 0.35)
		c.Iron = src.Uniform(0.05, 0.15)
	case models.PlanetMiniNeptune:
		c.Hydrogen = src.Uniform(0.02, 0.15)
		c.Water = src.Uniform(0.20, 0.50)
		c.Silicate = src.Uniform(0.25, 0.55)
		c.Iron = src.Uniform(0.10, 0.30)
	default:
		if eqTemp <= 400 {
			c.Water = math.Pow(10, src.Uniform(-5, -3))
			delivered := a >= env.HabitableInner || a > env.FrostLine*0.7
			if delivered && src.Chance(0.15) {
				c.Water = src.Uniform(0.05, 0.5)
			}
		}
		c.Silicate = src.Uniform(0.45, 0.85)
		c.Iron = src.Uniform(0.15, 0.45)
	}
	return c.Normalized()
}

// SamplePressure returns the surface pressure in atm. Envelope classes use
// mass·1000 as a saturating display proxy.
func SamplePressure(src *rng.Source, class models.PlanetClass, mass float64) float64 {
	if class.HasEnvelope() {
		return mass * 1000
	}
	if mass > 0.1 && src.Chance(math.Min(1, mass*0.8)) {
		return mass * mass * src.Uniform(0.1, 10)
	}
	return 0
}

// SurfaceTemperature adds the pressure-driven greenhouse term to eqTemp.
// Outside (0.01, 1000) atm the surface sits at equilibrium.
func SurfaceTemperature(eqTemp, pressure float64) float64 {
	if pressure <= 0.01 || pressure >= 1000 {
		return eqTemp
	}
	greenhouse := (157.5*math.Log10(pressure) + 35) / 255 * eqTemp
	return eqTemp + math.Max(0, greenhouse)
}

// Desiccate removes all water from a composition and renormalizes the rest.
func Desiccate(c models.Composition) models.Composition {
	c.Water = 0
	return c.Normalized()
}

// Structure is the bulk size derived from mass and composition.
type Structure struct {
	RadiusEarth float64
	RadiusKm    float64
	Density     float64
}

// HydrogenDensity is the thermally inflated density of the light envelope.
func HydrogenDensity(surfaceTemp float64) float64 {
	return math.Max(0.1, 1.5-0.3*math.Log10(math.Max(1, surfaceTemp)))
}

// ComputeStructure sums per-material volumes to get radius and density.
func ComputeStructure(mass float64, c models.Composition, surfaceTemp float64) Structure {
	grams := mass * earthMassGrams
	volume := grams*c.Iron/ironDensity +
		grams*c.Silicate/silicateDensity +
		grams*c.Water/waterDensity +
		grams*c.Hydrogen/HydrogenDensity(surfaceTemp)

	radiusCm := math.Cbrt(3 * volume / (4 * math.Pi))
	radiusKm := radiusCm / cmPerKm
	return Structure{
		RadiusEarth: radiusKm / earthRadiusKm,
		RadiusKm:    radiusKm,
		Density:     grams / volume,
	}
}

// SummaryColor is the flat swatch used by list views.
func SummaryColor(class models.PlanetClass, c models.Composition) string {
	switch class {
	case models.PlanetGasGiant:
		return "#e0c0a0"
	case models.PlanetIceGiant:
		return "#a0d0e0"
	case models.PlanetMiniNeptune:
		return "#b0d0d0"
	}
	if c.Water > 0.2 {
		return "#406080"
	}
	return "#a08c76"
}
