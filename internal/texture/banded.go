package texture

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

// ramp is the dark→base→light→base→accent palette of a banded atmosphere.
type ramp struct {
	dark, base, light, accent colorful.Color
}

func bandedRamp(src *rng.Source, in Input) ramp {
	hue := src.Float64()
	sat := src.Uniform(0.3, 0.8)
	light := src.Uniform(0.4, 0.7)

	switch in.Class {
	case models.PlanetGasGiant:
		switch {
		case in.SurfaceTemp < 150:
			hue = src.Uniform(0.08, 0.14)
			sat, light = 0.4, 0.75
		case in.SurfaceTemp > 1000:
			if src.Float64() > 0.5 {
				hue = src.Uniform(0.6, 0.75)
			} else {
				hue = src.Uniform(0.95, 1.05)
			}
			sat, light = 0.8, 0.4
		default:
			if src.Float64() > 0.5 {
				hue = src.Uniform(0.05, 0.15)
			}
		}
	case models.PlanetIceGiant:
		hue = src.Uniform(0.45, 0.65)
		sat, light = 0.6, 0.65
	}

	return ramp{
		dark:   hsl(hue, math.Min(1, sat+0.2), math.Max(0, light-0.2)),
		base:   hsl(hue, sat, light),
		light:  hsl(hue+0.05, math.Max(0, sat-0.1), math.Min(1, light+0.2)),
		accent: hsl(hue+0.5, sat, math.Max(0, light-0.1)),
	}
}

func (r ramp) at(v float64) colorful.Color {
	switch {
	case v < 0.3:
		return r.dark.BlendRgb(r.base, v/0.3)
	case v < 0.6:
		return r.base.BlendRgb(r.light, (v-0.3)/0.3)
	case v < 0.8:
		return r.light.BlendRgb(r.base, (v-0.6)/0.2)
	default:
		return r.base.BlendRgb(r.accent, (v-0.8)/0.2)
	}
}

type storm struct {
	x, y float64
}

const stormRadius = 0.15

func paintBanded(src *rng.Source, c *canvas, in Input, seed float64) {
	palette := bandedRamp(src, in)

	bandScale := src.Uniform(10, 40)
	turbulence := src.Uniform(0.5, 3.0)
	detail := src.Uniform(2, 6)
	hasStorm := src.Float64() > 0.7
	spot := storm{x: src.Uniform(0.2, 0.8), y: src.Uniform(0.4, 0.6)}

	n := float64(c.size)
	for y := 0; y < c.size; y++ {
		ny := float64(y) / n
		for x := 0; x < c.size; x++ {
			nx := float64(x) / n

			// Two low-frequency fields warp the coordinates of the detail field.
			qx := src.FBM(nx+seed, ny+seed, 0, 2)
			qy := src.FBM(nx+seed+5.2, ny+seed+1.3, 0, 2)
			detailNoise := src.FBM(nx*detail+qx*turbulence, ny*bandScale+qy*turbulence, seed, 4)

			band := math.Sin(ny*bandScale+qx*2) + detailNoise*0.5

			if hasStorm {
				dx := nx - spot.x
				dy := (ny - spot.y) * 2
				if dist := math.Hypot(dx, dy); dist < stormRadius {
					swirl := src.FBM(nx*15, ny*15, seed+10, 3)
					band = lerp(1-dist/stormRadius, band, swirl+0.5)
				}
			}

			c.set(x, y, palette.at(clamp01((band+1.5)/3)))
		}
	}
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
