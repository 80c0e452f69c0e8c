package texture

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

// DefaultSize is the edge length of generated textures in pixels.
const DefaultSize = 256

// Input is the subset of a planet's physical state the texture depends on.
type Input struct {
	Class       models.PlanetClass
	SurfaceTemp float64
	Water       float64
	Pressure    float64
}

func InputFor(p models.Planet) Input {
	return Input{
		Class:       p.Class,
		SurfaceTemp: p.SurfaceTemp,
		Water:       p.Composition.Water,
		Pressure:    p.Pressure,
	}
}

// canvas is the working surface in linear 0..1 RGB before quantization.
type canvas struct {
	size int
	px   []colorful.Color
}

func newCanvas(size int) *canvas {
	return &canvas{size: size, px: make([]colorful.Color, size*size)}
}

func (c *canvas) set(x, y int, col colorful.Color) {
	c.px[y*c.size+x] = col
}

func (c *canvas) get(x, y int) colorful.Color {
	return c.px[y*c.size+x]
}

// Synthesize paints a square size×size texture for the planet described by
// in. Noise offsets and style parameters are drawn from src, so the result is
// reproducible for a given seed but varies between calls.
func Synthesize(src *rng.Source, in Input, size int) *models.Texture {
	if size <= 0 {
		size = DefaultSize
	}
	seed := src.Uniform(0, 10000)

	c := newCanvas(size)
	if in.Class.HasEnvelope() {
		paintBanded(src, c, in, seed)
	} else {
		paintTerrain(src, c, in, seed)
	}
	if in.Pressure > 0.5 && !in.Class.IsGiant() {
		paintClouds(src, c, in, seed+99)
	}
	return c.disc()
}

// disc quantizes the canvas and clears everything outside the inscribed
// circle.
func (c *canvas) disc() *models.Texture {
	n := c.size
	pix := make([]uint8, n*n*4)
	half := float64(n) / 2
	for y := 0; y < n; y++ {
		dy := float64(y) + 0.5 - half
		for x := 0; x < n; x++ {
			dx := float64(x) + 0.5 - half
			if dx*dx+dy*dy > half*half {
				continue
			}
			r, g, b := quantize(c.get(x, y))
			i := (y*n + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 255
		}
	}
	return models.NewTexture(n, pix)
}

func quantize(col colorful.Color) (uint8, uint8, uint8) {
	for _, v := range []*float64{&col.R, &col.G, &col.B} {
		if math.IsNaN(*v) {
			*v = 0
		}
	}
	return col.Clamped().RGB255()
}

// rgb builds a color from 0..255 channel values.
func rgb(r, g, b float64) colorful.Color {
	return colorful.Color{R: r / 255, G: g / 255, B: b / 255}
}

// hsl builds a color from a hue in turns (wrapped into [0,1)).
func hsl(h, s, l float64) colorful.Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	return colorful.Hsl(h*360, s, l)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
