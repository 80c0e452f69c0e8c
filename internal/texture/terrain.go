package texture

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"starsystem-server/internal/rng"
)

const (
	lavaTemp      = 1000.0
	liquidMinTemp = 240.0
	liquidMaxTemp = 373.0
	lifeMinTemp   = 250.0
	lifeMaxTemp   = 330.0
	snowMaxTemp   = 320.0
	aridTemp      = 350.0
	frozenTemp    = 250.0

	oceanWorldWater = 0.01
	seaLevelPerUnit = 1000.0
	maxSeaLevel     = 1.0
)

// Regime is the mutually exclusive rendering branch for rocky worlds.
type Regime int

const (
	RegimeTerrain Regime = iota
	RegimeLava
	RegimeOcean
)

func (r Regime) String() string {
	switch r {
	case RegimeLava:
		return "lava"
	case RegimeOcean:
		return "ocean"
	default:
		return "terrain"
	}
}

func canHoldLiquid(temp float64) bool {
	return temp >= liquidMinTemp && temp <= liquidMaxTemp
}

// TerrainRegime picks the rocky-world branch. Lava wins over ocean; an ocean
// world is any habitable-temperature surface with more than 1% water.
func TerrainRegime(in Input) Regime {
	switch {
	case in.SurfaceTemp > lavaTemp:
		return RegimeLava
	case in.Water > oceanWorldWater && canHoldLiquid(in.SurfaceTemp):
		return RegimeOcean
	default:
		return RegimeTerrain
	}
}

// SeaLevel is the height-field threshold below which terrain renders as
// water; -1 when the surface can never hold liquid.
func SeaLevel(in Input) float64 {
	if !canHoldLiquid(in.SurfaceTemp) {
		return -1
	}
	return math.Min(in.Water*seaLevelPerUnit, maxSeaLevel)
}

type terrainPalette struct {
	sand, rock, grass, forest, ocean, shallow, snow colorful.Color
}

func terrainColors(src *rng.Source, temp float64) terrainPalette {
	shiftR := (src.Float64() - 0.5) * 40
	shiftG := (src.Float64() - 0.5) * 40
	shiftB := (src.Float64() - 0.5) * 40

	var p terrainPalette
	switch {
	case temp < frozenTemp:
		p.sand = rgb(200, 200, 220)
		p.rock = rgb(80+shiftR, 90+shiftG, 100+shiftB)
		p.grass = rgb(220, 230, 255)
		p.forest = rgb(100, 120, 140)
		p.ocean = rgb(10, 20, 50)
		p.snow = rgb(245, 250, 255)
	case temp > aridTemp:
		if src.Float64() > 0.5 {
			p.sand = rgb(200+math.Abs(shiftR), 120, 80)
			p.rock = rgb(100, 60, 50)
		} else {
			p.sand = rgb(220, 200+math.Abs(shiftG), 140)
			p.rock = rgb(120, 110, 90)
		}
		p.grass, p.forest = p.sand, p.rock
		p.ocean = rgb(10, 40, 90)
		p.snow = rgb(255, 255, 255)
	default:
		p.sand = rgb(194+shiftR, 178+shiftG, 128+shiftB)
		p.rock = rgb(100, 90, 80)
		p.grass = rgb(50+shiftR*0.5, 100+math.Abs(shiftG), 40)
		p.forest = rgb(20, 60, 20)
		p.ocean = rgb(10, 40, 90)
		p.snow = rgb(240, 240, 255)
	}
	p.shallow = colorful.Color{R: p.ocean.R + 20.0/255, G: p.ocean.G + 40.0/255, B: p.ocean.B + 30.0/255}
	return p
}

var (
	lavaDark   = rgb(40, 10, 10)
	lavaBright = rgb(255, 100, 0)
	lavaCrust  = rgb(150, 20, 0)
)

func paintTerrain(src *rng.Source, c *canvas, in Input, seed float64) {
	regime := TerrainRegime(in)
	sea := SeaLevel(in)
	palette := terrainColors(src, in.SurfaceTemp)
	terrainScale := src.Uniform(2.5, 6.0)
	moistureScale := src.Uniform(8.0, 15.0)
	life := in.SurfaceTemp >= lifeMinTemp && in.SurfaceTemp <= lifeMaxTemp

	n := float64(c.size)
	for y := 0; y < c.size; y++ {
		ny := float64(y) / n
		for x := 0; x < c.size; x++ {
			nx := float64(x) / n

			height := src.FBM(nx*terrainScale, ny*terrainScale, seed, 6)
			moisture := src.FBM(nx*moistureScale+10, ny*moistureScale+10, seed+50, 4)

			var col colorful.Color
			switch regime {
			case RegimeLava:
				crust := src.FBM(nx*6, ny*6, seed+10, 4)
				if crust < 0.45 {
					col = blend(lavaBright, lavaCrust, crust/0.45)
				} else {
					col = lavaDark
				}
			case RegimeOcean:
				depth := src.FBM(nx*3, ny*3, seed, 3)
				col = blend(palette.ocean, palette.shallow, depth)
			default:
				if sea > 0 && height < sea {
					col = blend(palette.ocean, palette.shallow, height/sea)
					break
				}
				alt := (height - sea) / math.Max(1-sea, 1e-6)
				col = palette.land(alt, moisture, life)

				lat := math.Abs(ny-0.5) * 2
				if in.SurfaceTemp < snowMaxTemp && lat > 0.8-alt*0.2 {
					col = palette.snow
				}

				grain := (src.Float64() - 0.5) * 15 / 255
				col = colorful.Color{R: col.R + grain, G: col.G + grain, B: col.B + grain}
			}
			c.set(x, y, col)
		}
	}
}

// land maps altitude above sea level and moisture to a surface color.
// Vegetation only appears when life is possible.
func (p terrainPalette) land(alt, moisture float64, life bool) colorful.Color {
	sand := p.sand
	if moisture > 0.6 {
		sand = colorful.Color{R: sand.R * 0.9, G: sand.G * 0.9, B: sand.B * 0.9}
	}
	switch {
	case alt < 0.05:
		return sand
	case alt < 0.2:
		if life && moisture > 0.4 {
			return p.grass
		}
		return sand
	case alt < 0.4:
		if !life {
			return p.rock
		}
		if moisture > 0.3 {
			return p.forest
		}
		return p.rock
	default:
		return p.rock
	}
}

// blend interpolates linearly in RGB. t outside [0,1] extrapolates; the
// result is clamped at quantization.
func blend(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, t)
}
