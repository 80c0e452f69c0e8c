package star

import (
	"fmt"
	"math"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

// massBracket is the solar-mass range sampled for a constrained class.
type massBracket struct {
	min, max float64
}

var massBrackets = map[models.SpectralClass]massBracket{
	models.SpectralO: {16, 60},
	models.SpectralB: {2.1, 16},
	models.SpectralA: {1.4, 2.1},
	models.SpectralF: {1.04, 1.4},
	models.SpectralG: {0.8, 1.04},
	models.SpectralK: {0.45, 0.8},
	models.SpectralM: {0.1, 0.45},
}

// MassBracket returns the solar-mass range sampled for a constrained class.
func MassBracket(class models.SpectralClass) (min, max float64, ok bool) {
	b, ok := massBrackets[class]
	return b.min, b.max, ok
}

// Generate produces a main-sequence star. A concrete class constrains the
// mass bracket; Random samples the initial-mass function; anything else
// falls back to one solar mass. The display name is left empty for the
// naming stage.
func Generate(src *rng.Source, class models.SpectralClass) models.Star {
	mass := sampleMass(src, class)

	lum := Luminosity(mass)
	radius := BaseRadius(mass)

	metallicity := (src.Float64() + src.Float64() + src.Float64() + src.Float64() - 2) * 0.4
	z := math.Pow(10, metallicity)
	radius *= math.Pow(z, 0.15)
	lum *= math.Pow(z, -0.1)

	temp := 5778 * math.Pow(lum/(radius*radius), 0.25)

	return models.Star{
		Mass:          mass,
		Radius:        radius,
		Luminosity:    lum,
		Temperature:   temp,
		Metallicity:   metallicity,
		AbsMagnitude:  4.74 - 2.5*math.Log10(lum),
		SpectralClass: ClassifyTemperature(temp),
		Color:         ColorHex(temp),
	}
}

func sampleMass(src *rng.Source, class models.SpectralClass) float64 {
	if class == models.SpectralRandom || class == "" {
		return sampleIMF(src)
	}
	b, ok := massBrackets[class]
	if !ok {
		return 1.0
	}
	if class == models.SpectralO {
		return b.min + src.PowerLaw(6)*(b.max-b.min)
	}
	return src.Uniform(b.min, b.max)
}

// sampleIMF draws from a log-normal initial-mass function, rejecting the
// tail at 100 solar masses.
func sampleIMF(src *rng.Source) float64 {
	for {
		u := src.Float64()
		term := math.Sqrt2 * rng.InverseErf(2*u-1)
		mass := math.Exp(-1.3+1.1*term) + 0.08
		if mass < 100 && !math.IsNaN(mass) {
			return mass
		}
	}
}

// Luminosity is the piecewise mass–luminosity relation in solar units.
func Luminosity(mass float64) float64 {
	switch {
	case mass < 0.43:
		return 0.23 * math.Pow(mass, 2.3)
	case mass < 2:
		return math.Pow(mass, 4)
	case mass < 50:
		return 1.4 * math.Pow(mass, 3.5)
	default:
		return 32000 * mass
	}
}

// BaseRadius is the main-sequence mass–radius fit in solar radii, before the
// metallicity correction.
func BaseRadius(mass float64) float64 {
	if mass < 1 {
		return math.Pow(mass, 0.9)
	}
	return math.Pow(mass, 0.6)
}

// ClassifyTemperature maps an effective temperature to its spectral class.
func ClassifyTemperature(temp float64) models.SpectralClass {
	switch {
	case temp >= 30000:
		return models.SpectralO
	case temp >= 10000:
		return models.SpectralB
	case temp >= 7500:
		return models.SpectralA
	case temp >= 6000:
		return models.SpectralF
	case temp >= 5200:
		return models.SpectralG
	case temp >= 3700:
		return models.SpectralK
	default:
		return models.SpectralM
	}
}

// ColorHex renders the blackbody display color as #rrggbb.
func ColorHex(temp float64) string {
	c := KelvinToRGB(temp)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
