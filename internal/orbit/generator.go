package orbit

import (
	"math"
	"sort"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

const (
	// MinSpacing is the minimum period-ratio proxy between neighbouring orbits.
	MinSpacing = 1.35

	innerEdge = 0.05 // AU
	outerEdge = 80.0 // AU

	candidatesPerPlanet = 5
	hotFraction         = 0.2
)

// Zones are the luminosity-scaled distances (AU) that drive placement and
// classification.
type Zones struct {
	FrostLine      float64 `json:"frost_line"`
	HabitableInner float64 `json:"habitable_inner"`
	HabitableOuter float64 `json:"habitable_outer"`
	// HotLimit is where the equilibrium temperature reaches 373 K.
	HotLimit float64 `json:"hot_limit"`

	// DisplayHabitable* are the conservative bounds used by map overlays.
	// Generation never reads them.
	DisplayHabitableInner float64 `json:"display_habitable_inner"`
	DisplayHabitableOuter float64 `json:"display_habitable_outer"`
}

func ZonesFor(luminosity float64) Zones {
	root := math.Sqrt(luminosity)
	hot := 278 * math.Pow(luminosity, 0.25) / 373
	return Zones{
		FrostLine:             2.7 * root,
		HabitableInner:        0.75 * root,
		HabitableOuter:        1.5 * root,
		HotLimit:              hot * hot,
		DisplayHabitableInner: 0.95 * root,
		DisplayHabitableOuter: 1.37 * root,
	}
}

// Generate places up to n stable orbits around a star of the given
// luminosity, in ascending semi-major axis with every neighbour at least
// MinSpacing apart. Fewer than n orbits are returned when the candidate pool
// runs out.
func Generate(src *rng.Source, luminosity float64, n int) []models.Orbit {
	if n <= 0 {
		return nil
	}
	z := ZonesFor(luminosity)

	candidates := make([]float64, n*candidatesPerPlanet)
	for i := range candidates {
		candidates[i] = src.LogUniform(innerEdge, outerEdge)
	}
	sort.Float64s(candidates)

	axes := ensureOuter(selectStable(candidates, n, z.HotLimit), n, z.HabitableInner)

	orbits := make([]models.Orbit, len(axes))
	for i, a := range axes {
		orbits[i] = models.Orbit{
			SemiMajorAxis: a,
			Eccentricity:  src.PowerLaw(4) * 0.5,
			Inclination:   src.PowerLaw(10) * 20,
		}
	}
	return orbits
}

// selectStable greedily accepts sorted candidates that keep MinSpacing from
// the last accepted orbit, admitting at most floor(n·0.2) inside hotLimit.
func selectStable(sorted []float64, n int, hotLimit float64) []float64 {
	maxHot := int(math.Floor(float64(n) * hotFraction))
	hot := 0
	accepted := make([]float64, 0, n)
	for _, a := range sorted {
		if len(accepted) > 0 && a < accepted[len(accepted)-1]*MinSpacing {
			continue
		}
		if a < hotLimit {
			if hot >= maxHot {
				continue
			}
			hot++
		}
		accepted = append(accepted, a)
		if len(accepted) >= n {
			break
		}
	}
	return accepted
}

// ensureOuter guarantees one orbit (two for systems above ten planets) at or
// beyond the inner habitable edge, then restores spacing outward. When no
// candidate survived selection a single orbit is placed just past hzInner,
// which always lies outside the hot limit.
func ensureOuter(axes []float64, n int, hzInner float64) []float64 {
	if len(axes) == 0 {
		if n <= 0 {
			return axes
		}
		return []float64{hzInner * 1.05}
	}
	minOuter := 1
	if n > 10 {
		minOuter = 2
	}
	if len(axes) < minOuter {
		return axes
	}
	outer := 0
	for _, a := range axes {
		if a >= hzInner {
			outer++
		}
	}
	if outer >= minOuter {
		return axes
	}

	start := len(axes) - minOuter
	if axes[start] < hzInner {
		axes[start] = hzInner * 1.05
	}
	for k := start + 1; k < len(axes); k++ {
		if axes[k] < axes[k-1]*MinSpacing {
			axes[k] = axes[k-1] * MinSpacing
		}
	}
	return axes
}
