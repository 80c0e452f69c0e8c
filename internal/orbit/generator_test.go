package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsystem-server/internal/rng"
)

func TestZonesFor_SolarLuminosity(t *testing.T) {
	z := ZonesFor(1)
	assert.InDelta(t, 2.7, z.FrostLine, 1e-12)
	assert.InDelta(t, 0.75, z.HabitableInner, 1e-12)
	assert.InDelta(t, 1.5, z.HabitableOuter, 1e-12)
	assert.InDelta(t, math.Pow(278.0/373.0, 2), z.HotLimit, 1e-12)
	assert.InDelta(t, 0.95, z.DisplayHabitableInner, 1e-12)
	assert.InDelta(t, 1.37, z.DisplayHabitableOuter, 1e-12)
}

func TestGenerate_ZeroPlanets(t *testing.T) {
	assert.Empty(t, Generate(rng.New(1), 1, 0))
}

func TestGenerate_SpacingAndOrder(t *testing.T) {
	for _, lum := range []float64{0.001, 0.05, 1, 30, 5000} {
		for _, n := range []int{1, 5, 12, 30, 54} {
			for seed := range uint64(40) {
				orbits := Generate(rng.New(seed), lum, n)
				require.LessOrEqual(t, len(orbits), n)
				for k := 1; k < len(orbits); k++ {
					require.GreaterOrEqual(t, orbits[k].SemiMajorAxis, orbits[k-1].SemiMajorAxis*MinSpacing,
						"lum=%v n=%d seed=%d k=%d", lum, n, seed, k)
				}
			}
		}
	}
}

func TestGenerate_ElementRanges(t *testing.T) {
	for seed := range uint64(50) {
		for _, o := range Generate(rng.New(seed), 1, 20) {
			assert.GreaterOrEqual(t, o.Eccentricity, 0.0)
			assert.Less(t, o.Eccentricity, 0.5)
			assert.GreaterOrEqual(t, o.Inclination, 0.0)
			assert.Less(t, o.Inclination, 20.0)
			assert.Greater(t, o.SemiMajorAxis, 0.0)
		}
	}
}

func TestGenerate_OuterGuarantee(t *testing.T) {
	// For a very luminous star the habitable zone lies beyond most candidates.
	const lum = 2000.0
	z := ZonesFor(lum)
	for seed := range uint64(50) {
		for _, n := range []int{4, 15} {
			orbits := Generate(rng.New(seed), lum, n)
			minOuter := 1
			if n > 10 {
				minOuter = 2
			}
			if len(orbits) < minOuter {
				continue
			}
			outer := 0
			for _, o := range orbits {
				if o.SemiMajorAxis >= z.HabitableInner {
					outer++
				}
			}
			assert.GreaterOrEqual(t, outer, minOuter, "seed=%d n=%d", seed, n)
		}
	}
}

func TestSelectStable_HotQuota(t *testing.T) {
	sorted := []float64{0.05, 0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8, 25.6}
	got := selectStable(sorted, 10, 0.5)
	hot := 0
	for _, a := range got {
		if a < 0.5 {
			hot++
		}
	}
	assert.Equal(t, 2, hot, "floor(10·0.2) hot orbits")
	assert.Equal(t, []float64{0.05, 0.1, 0.8, 1.6, 3.2, 6.4, 12.8, 25.6}, got)
}

func TestSelectStable_SkipsCrowdedCandidates(t *testing.T) {
	got := selectStable([]float64{1, 1.2, 1.34, 1.35, 1.5, 2}, 5, 0)
	assert.Equal(t, []float64{1, 1.35, 2}, got)
}

func TestEnsureOuter_PushesAndRespaces(t *testing.T) {
	axes := ensureOuter([]float64{0.1, 0.2, 0.3}, 3, 1.0)
	assert.Equal(t, []float64{0.1, 0.2, 1.05}, axes)

	axes = ensureOuter([]float64{0.1, 0.2, 0.3, 0.45}, 11, 1.0)
	assert.InDelta(t, 1.05, axes[2], 1e-12)
	assert.InDelta(t, 1.05*MinSpacing, axes[3], 1e-12)
}

func TestEnsureOuter_NoOpWhenSatisfied(t *testing.T) {
	axes := ensureOuter([]float64{0.1, 2.0}, 2, 1.0)
	assert.Equal(t, []float64{0.1, 2.0}, axes)
}

func TestEnsureOuter_PlacesOrbitWhenNoneAccepted(t *testing.T) {
	assert.Equal(t, []float64{0.75 * 1.05}, ensureOuter(nil, 3, 0.75))
	assert.Empty(t, ensureOuter(nil, 0, 0.75))
}

func TestGenerate_SmallSystemsAllHot(t *testing.T) {
	// With n < 5 no hot orbit is allowed, so a pool that lies entirely inside
	// the hot limit must still yield one orbit.
	sorted := []float64{0.05, 0.07, 0.1, 0.14, 0.2}
	z := ZonesFor(1)
	require.Empty(t, selectStable(sorted, 1, z.HotLimit))

	axes := ensureOuter(selectStable(sorted, 1, z.HotLimit), 1, z.HabitableInner)
	require.Len(t, axes, 1)
	assert.Greater(t, axes[0], z.HotLimit)
}

func TestGenerate_AtLeastOneOrbit(t *testing.T) {
	for _, lum := range []float64{0.01, 1, 60, 2000} {
		for _, n := range []int{1, 2, 3, 4} {
			for seed := range uint64(500) {
				orbits := Generate(rng.New(seed), lum, n)
				require.NotEmpty(t, orbits, "lum=%v n=%d seed=%d", lum, n, seed)
			}
		}
	}
}
