package texture

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"starsystem-server/internal/rng"
)

const (
	cloudThreshold = 0.55
	cloudGain      = 200.0
	hotCloudBoost  = 1.2
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// CloudAlpha maps a cloud-field sample to an opacity in 0..255.
func CloudAlpha(n, surfaceTemp float64) float64 {
	if n <= cloudThreshold {
		return 0
	}
	alpha := (n - cloudThreshold) * cloudGain
	if surfaceTemp > aridTemp {
		alpha *= hotCloudBoost
	}
	return math.Min(255, alpha)
}

func paintClouds(src *rng.Source, c *canvas, in Input, seed float64) {
	scale := src.Uniform(2.5, 4.5)
	n := float64(c.size)
	for y := 0; y < c.size; y++ {
		ny := float64(y) / n
		for x := 0; x < c.size; x++ {
			nx := float64(x) / n
			alpha := CloudAlpha(src.FBM(nx*scale, ny*scale, seed, 4), in.SurfaceTemp)
			if alpha == 0 {
				continue
			}
			c.set(x, y, c.get(x, y).BlendRgb(white, alpha/255))
		}
	}
}
