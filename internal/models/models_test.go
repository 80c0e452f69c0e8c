package models

import (
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposition_Normalized(t *testing.T) {
	c := Composition{Iron: 2, Silicate: 5, Water: 1, Hydrogen: 2}.Normalized()
	assert.True(t, c.Valid())
	assert.InDelta(t, 0.5, c.Silicate, 1e-12)
}

func TestComposition_NormalizedZeroFallsBack(t *testing.T) {
	c := Composition{}.Normalized()
	assert.Equal(t, Composition{Iron: 0.3, Silicate: 0.7}, c)
	assert.True(t, c.Valid())
}

func TestComposition_Valid(t *testing.T) {
	assert.False(t, Composition{Iron: 0.5, Silicate: 0.4}.Valid())
	assert.False(t, Composition{Iron: -0.1, Silicate: 1.1}.Valid())
	assert.True(t, Composition{Silicate: 1}.Valid())
}

func TestPlanetClass_Groups(t *testing.T) {
	tests := []struct {
		class    PlanetClass
		giant    bool
		envelope bool
	}{
		{PlanetGasGiant, true, true},
		{PlanetIceGiant, true, true},
		{PlanetMiniNeptune, false, true},
		{PlanetTerrestrial, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.giant, tt.class.IsGiant())
			assert.Equal(t, tt.envelope, tt.class.HasEnvelope())
		})
	}
}

func TestParseDensityTier(t *testing.T) {
	tier, ok := ParseDensityTier("")
	assert.True(t, ok)
	assert.Equal(t, DensityDefault, tier)

	tier, ok = ParseDensityTier("Extreme")
	assert.True(t, ok)
	assert.Equal(t, DensityExtreme, tier)

	_, ok = ParseDensityTier("Ludicrous")
	assert.False(t, ok)
}

func TestParseSpectralClass(t *testing.T) {
	for _, c := range []string{"O", "B", "A", "F", "G", "K", "M", "Random", ""} {
		_, ok := ParseSpectralClass(c)
		assert.True(t, ok, c)
	}
	_, ok := ParseSpectralClass("W")
	assert.False(t, ok)
}

func TestSystemData_CountClass(t *testing.T) {
	s := SystemData{Planets: []Planet{
		{Class: PlanetTerrestrial}, {Class: PlanetGasGiant}, {Class: PlanetTerrestrial},
	}}
	assert.Equal(t, 2, s.CountClass(PlanetTerrestrial))
	assert.Equal(t, 0, s.CountClass(PlanetIceGiant))
}

func TestTexture_ReadOnlyAccess(t *testing.T) {
	pix := make([]uint8, 4*4*4)
	pix[(1*4+2)*4+0] = 200
	pix[(1*4+2)*4+3] = 255
	tex := NewTexture(4, pix)

	assert.Equal(t, 4, tex.Size())
	assert.Equal(t, uint8(200), tex.RGBAAt(2, 1).R)
	assert.Equal(t, uint8(0), tex.RGBAAt(9, 9).A)

	cp := tex.Pixels()
	cp[(1*4+2)*4] = 1
	assert.Equal(t, uint8(200), tex.RGBAAt(2, 1).R, "copies must not alias the buffer")

	require.NoError(t, png.Encode(io.Discard, tex))
}

func TestNewTexture_PanicsOnBadBuffer(t *testing.T) {
	assert.Panics(t, func() { NewTexture(4, make([]uint8, 3)) })
}
