package star

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

// =============================================================================
// CONSTRAINED GENERATION
// =============================================================================

func TestGenerate_MassWithinClassBracket(t *testing.T) {
	for _, class := range models.SpectralClasses {
		t.Run(string(class), func(t *testing.T) {
			lo, hi, ok := MassBracket(class)
			require.True(t, ok)
			for seed := range uint64(200) {
				s := Generate(rng.New(seed), class)
				assert.GreaterOrEqual(t, s.Mass, lo)
				assert.LessOrEqual(t, s.Mass, hi)
			}
		})
	}
}

func TestGenerate_GClassMass(t *testing.T) {
	for seed := range uint64(500) {
		s := Generate(rng.New(seed), models.SpectralG)
		require.GreaterOrEqual(t, s.Mass, 0.8)
		require.LessOrEqual(t, s.Mass, 1.04)
	}
}

func TestGenerate_OClassSkewsLow(t *testing.T) {
	var sum float64
	const n = 400
	for seed := range uint64(n) {
		sum += Generate(rng.New(seed), models.SpectralO).Mass
	}
	// 16 + 44·E[U^6] = 16 + 44/7 ≈ 22.3
	assert.InDelta(t, 22.3, sum/n, 2.0)
}

func TestGenerate_UnknownClassFallsBackToSolarMass(t *testing.T) {
	s := Generate(rng.New(1), models.SpectralClass("W"))
	assert.Equal(t, 1.0, s.Mass)
}

// =============================================================================
// UNCONSTRAINED GENERATION
// =============================================================================

func TestGenerate_RandomMassTruncated(t *testing.T) {
	for seed := range uint64(2000) {
		s := Generate(rng.New(seed), models.SpectralRandom)
		require.Less(t, s.Mass, 100.0)
		require.Greater(t, s.Mass, 0.08)
	}
}

func TestGenerate_RandomFavoursLowMass(t *testing.T) {
	low := 0
	const n = 1000
	for seed := range uint64(n) {
		if Generate(rng.New(seed), models.SpectralRandom).Mass < 0.5 {
			low++
		}
	}
	// median of exp(-1.3 + 1.1·N(0,1)) + 0.08 is ≈ 0.35
	assert.Greater(t, low, n/2)
}

// =============================================================================
// DERIVED QUANTITIES
// =============================================================================

func TestGenerate_PhysicalInvariants(t *testing.T) {
	classes := append([]models.SpectralClass{models.SpectralRandom}, models.SpectralClasses...)
	for _, class := range classes {
		for seed := range uint64(100) {
			s := Generate(rng.New(seed), class)
			require.Greater(t, s.Mass, 0.0)
			require.Greater(t, s.Radius, 0.0)
			require.Greater(t, s.Luminosity, 0.0)
			require.Greater(t, s.Temperature, 0.0)
			require.Equal(t, ClassifyTemperature(s.Temperature), s.SpectralClass)
			require.InDelta(t, 4.74-2.5*math.Log10(s.Luminosity), s.AbsMagnitude, 1e-9)
			require.InDelta(t, 5778*math.Pow(s.Luminosity/(s.Radius*s.Radius), 0.25), s.Temperature, 1e-6)
			require.GreaterOrEqual(t, s.Metallicity, -0.8)
			require.LessOrEqual(t, s.Metallicity, 0.8)
			require.Empty(t, s.Name)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate(rng.New(77), models.SpectralRandom), Generate(rng.New(77), models.SpectralRandom))
}

func TestLuminosity_Branches(t *testing.T) {
	tests := []struct {
		mass float64
		want float64
	}{
		{0.2, 0.23 * math.Pow(0.2, 2.3)},
		{1.0, 1.0},
		{10, 1.4 * math.Pow(10, 3.5)},
		{60, 32000 * 60},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Luminosity(tt.mass), tt.want*1e-12)
	}
}

func TestBaseRadius(t *testing.T) {
	assert.InDelta(t, math.Pow(0.5, 0.9), BaseRadius(0.5), 1e-12)
	assert.InDelta(t, math.Pow(4, 0.6), BaseRadius(4), 1e-12)
	assert.Equal(t, 1.0, BaseRadius(1))
}

func TestClassifyTemperature_Thresholds(t *testing.T) {
	tests := []struct {
		temp float64
		want models.SpectralClass
	}{
		{30000, models.SpectralO},
		{29999, models.SpectralB},
		{10000, models.SpectralB},
		{9999, models.SpectralA},
		{7500, models.SpectralA},
		{7499, models.SpectralF},
		{6000, models.SpectralF},
		{5999, models.SpectralG},
		{5778, models.SpectralG},
		{5200, models.SpectralG},
		{5199, models.SpectralK},
		{3700, models.SpectralK},
		{3699, models.SpectralM},
		{2400, models.SpectralM},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTemperature(tt.temp), "temp %v", tt.temp)
	}
}

func TestKelvinToRGB(t *testing.T) {
	hot := KelvinToRGB(30000)
	cool := KelvinToRGB(3000)
	assert.Equal(t, uint8(255), hot.B)
	assert.Equal(t, uint8(255), cool.R)
	assert.Greater(t, cool.R, cool.B)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, ColorHex(5778))
}
