package planet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

func sunlike() Environment {
	return Environment{
		Luminosity:     1,
		StellarMass:    1,
		FrostLine:      2.7,
		HabitableInner: 0.75,
		HabitableOuter: 1.5,
	}
}

func TestEquilibriumTemperature(t *testing.T) {
	assert.InDelta(t, 278, EquilibriumTemperature(1, 1), 1e-9)
	assert.InDelta(t, 139, EquilibriumTemperature(1, 4), 1e-9)
	assert.InDelta(t, 278*math.Sqrt(2), EquilibriumTemperature(4, 1), 1e-9)
}

func TestClassify_ZoneShares(t *testing.T) {
	env := sunlike()
	tests := []struct {
		name     string
		a        float64
		class    models.PlanetClass
		minShare float64
		maxShare float64
	}{
		{"habitable zone is nearly all rocky", 1.0, models.PlanetTerrestrial, 0.96, 1.0},
		{"outer system favours gas giants", 10, models.PlanetGasGiant, 0.35, 0.45},
		{"outer system has ice giants", 10, models.PlanetIceGiant, 0.30, 0.40},
		{"inner system is mostly rocky", 0.3, models.PlanetTerrestrial, 0.70, 0.80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rng.New(21)
			const n = 4000
			hits := 0
			for range n {
				if Classify(src, tt.a, env) == tt.class {
					hits++
				}
			}
			share := float64(hits) / n
			assert.GreaterOrEqual(t, share, tt.minShare)
			assert.LessOrEqual(t, share, tt.maxShare)
		})
	}
}

func TestClassify_LowMassStarDemotesGiants(t *testing.T) {
	env := sunlike()
	src := rng.New(3)
	var normal, dwarf int
	for range 4000 {
		if Classify(src, 10, env) == models.PlanetGasGiant {
			normal++
		}
	}
	env.StellarMass = 0.3
	for range 4000 {
		if Classify(src, 10, env) == models.PlanetGasGiant {
			dwarf++
		}
	}
	assert.Greater(t, dwarf, 0, "some giants survive the redraw")
	assert.Less(t, float64(dwarf), float64(normal)*0.3)
}

func TestSampleMass_WithinClassRange(t *testing.T) {
	src := rng.New(4)
	for _, class := range []models.PlanetClass{
		models.PlanetTerrestrial, models.PlanetMiniNeptune, models.PlanetIceGiant, models.PlanetGasGiant,
	} {
		lo, hi := MassRange(class)
		for range 500 {
			m := SampleMass(src, class)
			require.GreaterOrEqual(t, m, lo, class)
			require.Less(t, m, hi, class)
		}
	}
}

func TestSampleComposition_AlwaysNormalized(t *testing.T) {
	env := sunlike()
	src := rng.New(5)
	for _, class := range []models.PlanetClass{
		models.PlanetTerrestrial, models.PlanetMiniNeptune, models.PlanetIceGiant, models.PlanetGasGiant,
	} {
		for _, a := range []float64{0.1, 1, 3, 20} {
			c := SampleComposition(src, class, a, EquilibriumTemperature(1, a), env)
			require.True(t, c.Valid(), "%s at %.1f AU: %+v", class, a, c)
		}
	}
}

func TestSampleComposition_Terrestrial(t *testing.T) {
	env := sunlike()

	t.Run("no hydrogen", func(t *testing.T) {
		src := rng.New(6)
		for range 200 {
			c := SampleComposition(src, models.PlanetTerrestrial, 1, 278, env)
			assert.Zero(t, c.Hydrogen)
		}
	})

	t.Run("hot worlds are dry", func(t *testing.T) {
		src := rng.New(7)
		for range 200 {
			c := SampleComposition(src, models.PlanetTerrestrial, 0.2, 620, env)
			assert.Zero(t, c.Water)
		}
	})

	t.Run("volatile delivery happens beyond the inner habitable edge", func(t *testing.T) {
		src := rng.New(8)
		wet := 0
		const n = 4000
		for range n {
			if SampleComposition(src, models.PlanetTerrestrial, 1.2, 250, env).Water > 0.01 {
				wet++
			}
		}
		assert.InDelta(t, 0.15, float64(wet)/n, 0.03)
	})

	t.Run("no delivery close in", func(t *testing.T) {
		src := rng.New(9)
		for range 500 {
			c := SampleComposition(src, models.PlanetTerrestrial, 0.5, 390, env)
			assert.Less(t, c.Water, 0.002)
		}
	})
}

func TestSamplePressure(t *testing.T) {
	src := rng.New(10)

	for _, class := range []models.PlanetClass{models.PlanetMiniNeptune, models.PlanetIceGiant, models.PlanetGasGiant} {
		assert.Equal(t, 12.5*1000, SamplePressure(src, class, 12.5), class)
	}

	for range 200 {
		assert.Zero(t, SamplePressure(src, models.PlanetTerrestrial, 0.08))
	}

	for range 200 {
		p := SamplePressure(src, models.PlanetTerrestrial, 2)
		if p == 0 {
			continue
		}
		assert.GreaterOrEqual(t, p, 4*0.1)
		assert.Less(t, p, 4*10.0)
	}
}

func TestSurfaceTemperature(t *testing.T) {
	tests := []struct {
		name     string
		pressure float64
		want     float64
	}{
		{"vacuum", 0, 278},
		{"trace", 0.01, 278},
		{"crushing", 1000, 278},
		{"earthlike", 1, 278 + 35.0/255*278},
		{"venusian", 90, 278 + (157.5*math.Log10(90)+35)/255*278},
		{"thin air clamps at zero", 0.5, 278},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SurfaceTemperature(278, tt.pressure), 1e-9)
		})
	}
}

func TestSurfaceTemperature_NeverBelowEquilibrium(t *testing.T) {
	for p := 0.001; p < 2000; p *= 1.3 {
		assert.GreaterOrEqual(t, SurfaceTemperature(200, p), 200.0, "pressure %.3f", p)
	}
}

func TestDesiccate(t *testing.T) {
	c := Desiccate(models.Composition{Iron: 0.2, Silicate: 0.5, Water: 0.3})
	assert.Zero(t, c.Water)
	assert.True(t, c.Valid())
	assert.InDelta(t, 0.2/0.7, c.Iron, 1e-12)

	assert.Equal(t, models.Composition{Iron: 0.3, Silicate: 0.7}, Desiccate(models.Composition{Water: 1}))
}

func TestHydrogenDensity(t *testing.T) {
	assert.InDelta(t, 1.5, HydrogenDensity(0.5), 1e-12)
	assert.InDelta(t, 1.5-0.3*2, HydrogenDensity(100), 1e-12)
	assert.Equal(t, 0.1, HydrogenDensity(1e10))
}

func TestComputeStructure_EarthLike(t *testing.T) {
	st := ComputeStructure(1, models.Composition{Iron: 0.32, Silicate: 0.68}, 288)
	// Uncompressed densities, so a bit larger than Earth.
	assert.InDelta(t, 1.10, st.RadiusEarth, 0.02)
	assert.InDelta(t, st.RadiusEarth*earthRadiusKm, st.RadiusKm, 1e-6)
	assert.InDelta(t, 1/(0.32/7.0+0.68/3.5), st.Density, 1e-9)
}

func TestComputeStructure_HydrogenInflates(t *testing.T) {
	rock := ComputeStructure(100, models.Composition{Silicate: 1}, 100)
	gas := ComputeStructure(100, models.Composition{Hydrogen: 1}, 100)
	assert.Greater(t, gas.RadiusEarth, rock.RadiusEarth)
	assert.Less(t, gas.Density, rock.Density)
}

func TestSummaryColor(t *testing.T) {
	assert.Equal(t, "#e0c0a0", SummaryColor(models.PlanetGasGiant, models.Composition{}))
	assert.Equal(t, "#a0d0e0", SummaryColor(models.PlanetIceGiant, models.Composition{}))
	assert.Equal(t, "#b0d0d0", SummaryColor(models.PlanetMiniNeptune, models.Composition{}))
	assert.Equal(t, "#406080", SummaryColor(models.PlanetTerrestrial, models.Composition{Water: 0.3, Silicate: 0.7}))
	assert.Equal(t, "#a08c76", SummaryColor(models.PlanetTerrestrial, models.Composition{Silicate: 1}))
}
