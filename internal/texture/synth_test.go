package texture

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

const testSize = 32

func inside(x, y, size int) bool {
	half := float64(size) / 2
	dx := float64(x) + 0.5 - half
	dy := float64(y) + 0.5 - half
	return dx*dx+dy*dy <= half*half
}

func TestSynthesize_CircularMask(t *testing.T) {
	inputs := map[string]Input{
		"gas giant":    {Class: models.PlanetGasGiant, SurfaceTemp: 120, Pressure: 1e5},
		"ice giant":    {Class: models.PlanetIceGiant, SurfaceTemp: 60, Pressure: 2e4},
		"temperate":    {Class: models.PlanetTerrestrial, SurfaceTemp: 290, Water: 0.0005, Pressure: 1},
		"lava":         {Class: models.PlanetTerrestrial, SurfaceTemp: 1400},
		"mini-neptune": {Class: models.PlanetMiniNeptune, SurfaceTemp: 300, Pressure: 5000},
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			tex := Synthesize(rng.New(1), in, testSize)
			require.Equal(t, testSize, tex.Size())
			for y := range testSize {
				for x := range testSize {
					c := tex.RGBAAt(x, y)
					if inside(x, y, testSize) {
						require.Equal(t, uint8(255), c.A, "(%d,%d) inside the disc", x, y)
					} else {
						require.Equal(t, uint8(0), c.A, "(%d,%d) outside the disc", x, y)
						require.Zero(t, c.R+c.G+c.B)
					}
				}
			}
		})
	}
}

func TestSynthesize_DefaultSize(t *testing.T) {
	tex := Synthesize(rng.New(2), Input{Class: models.PlanetIceGiant, SurfaceTemp: 70}, 0)
	assert.Equal(t, DefaultSize, tex.Size())
}

func TestSynthesize_SameSeedSameTexture(t *testing.T) {
	in := Input{Class: models.PlanetTerrestrial, SurfaceTemp: 280, Water: 0.0003, Pressure: 2}
	a := Synthesize(rng.New(9), in, testSize)
	b := Synthesize(rng.New(9), in, testSize)
	assert.Equal(t, a.Pixels(), b.Pixels())
}

func TestSynthesize_RepeatedCallsDiffer(t *testing.T) {
	src := rng.New(9)
	in := Input{Class: models.PlanetGasGiant, SurfaceTemp: 400, Pressure: 1e5}
	a := Synthesize(src, in, testSize)
	b := Synthesize(src, in, testSize)
	assert.NotEqual(t, a.Pixels(), b.Pixels())
}

func TestSynthesize_LavaWorldIsRed(t *testing.T) {
	tex := Synthesize(rng.New(3), Input{Class: models.PlanetTerrestrial, SurfaceTemp: 1500}, testSize)
	for y := range testSize {
		for x := range testSize {
			if !inside(x, y, testSize) {
				continue
			}
			c := tex.RGBAAt(x, y)
			assert.GreaterOrEqual(t, c.R, c.G)
			assert.NotZero(t, c.R, "lava pixel should never be black")
		}
	}
}

func TestSynthesize_OceanWorldIsBlue(t *testing.T) {
	in := Input{Class: models.PlanetTerrestrial, SurfaceTemp: 300, Water: 0.3}
	tex := Synthesize(rng.New(4), in, testSize)
	for y := range testSize {
		for x := range testSize {
			if !inside(x, y, testSize) {
				continue
			}
			c := tex.RGBAAt(x, y)
			assert.Greater(t, c.B, c.R)
			assert.Greater(t, c.B, c.G)
		}
	}
}

func TestSynthesize_CloudsOnlyBrighten(t *testing.T) {
	clear := Input{Class: models.PlanetTerrestrial, SurfaceTemp: 300, Water: 0.3}
	cloudy := clear
	cloudy.Pressure = 3

	a := Synthesize(rng.New(5), clear, testSize)
	b := Synthesize(rng.New(5), cloudy, testSize)
	for y := range testSize {
		for x := range testSize {
			ca, cb := a.RGBAAt(x, y), b.RGBAAt(x, y)
			assert.GreaterOrEqual(t, cb.R, ca.R)
			assert.GreaterOrEqual(t, cb.G, ca.G)
			assert.GreaterOrEqual(t, cb.B, ca.B)
		}
	}
}

func TestTerrainRegime(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Regime
	}{
		{"lava beats ocean", Input{SurfaceTemp: 1200, Water: 0.5}, RegimeLava},
		{"wet and temperate", Input{SurfaceTemp: 290, Water: 0.02}, RegimeOcean},
		{"ocean at lower liquid bound", Input{SurfaceTemp: 240, Water: 0.02}, RegimeOcean},
		{"too cold for ocean", Input{SurfaceTemp: 200, Water: 0.5}, RegimeTerrain},
		{"too dry for ocean", Input{SurfaceTemp: 290, Water: 0.005}, RegimeTerrain},
		{"hot desert", Input{SurfaceTemp: 600}, RegimeTerrain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TerrainRegime(tt.in))
		})
	}
}

func TestSeaLevel(t *testing.T) {
	assert.Equal(t, -1.0, SeaLevel(Input{SurfaceTemp: 200, Water: 0.001}))
	assert.Equal(t, -1.0, SeaLevel(Input{SurfaceTemp: 400, Water: 0.001}))
	assert.InDelta(t, 0.05, SeaLevel(Input{SurfaceTemp: 300, Water: 0.00005}), 1e-12)
	assert.Equal(t, 1.0, SeaLevel(Input{SurfaceTemp: 300, Water: 0.008}))
	assert.Equal(t, 0.0, SeaLevel(Input{SurfaceTemp: 300}))
}

func TestCloudAlpha(t *testing.T) {
	assert.Zero(t, CloudAlpha(0.55, 300))
	assert.Zero(t, CloudAlpha(-0.2, 300))
	assert.InDelta(t, 20, CloudAlpha(0.65, 300), 1e-9)
	assert.InDelta(t, 24, CloudAlpha(0.65, 400), 1e-9)
	assert.Equal(t, 255.0, CloudAlpha(5, 400))
}

func TestTerrainPalette_Land(t *testing.T) {
	p := terrainPalette{
		sand:   rgb(200, 180, 120),
		rock:   rgb(100, 90, 80),
		grass:  rgb(50, 120, 40),
		forest: rgb(20, 60, 20),
	}
	assert.Equal(t, p.sand, p.land(0.01, 0.1, true))
	assert.Equal(t, p.grass, p.land(0.1, 0.5, true))
	assert.Equal(t, p.sand, p.land(0.1, 0.5, false))
	assert.Equal(t, p.forest, p.land(0.3, 0.5, true))
	assert.Equal(t, p.rock, p.land(0.3, 0.5, false))
	assert.Equal(t, p.rock, p.land(0.9, 0.9, true))

	wet := p.land(0.01, 0.7, true)
	assert.InDelta(t, p.sand.R*0.9, wet.R, 1e-12)
}

func TestEncodePNG(t *testing.T) {
	tex := Synthesize(rng.New(6), Input{Class: models.PlanetIceGiant, SurfaceTemp: 50}, testSize)
	data, err := EncodePNG(tex)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, tex.Bounds(), img.Bounds())

	r, g, b, a := img.At(testSize/2, testSize/2).RGBA()
	want := tex.RGBAAt(testSize/2, testSize/2)
	assert.Equal(t, uint32(want.R)*0x101, r)
	assert.Equal(t, uint32(want.G)*0x101, g)
	assert.Equal(t, uint32(want.B)*0x101, b)
	assert.Equal(t, uint32(0xffff), a)
}
