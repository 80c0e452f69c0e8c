package star

import (
	"image/color"
	"math"
)

// KelvinToRGB approximates the display color of a blackbody at the given
// temperature (Tanner Helland's fit).
func KelvinToRGB(kelvin float64) color.RGBA {
	t := kelvin / 100
	var r, g, b float64
	if t <= 66 {
		r = 255
		g = 99.4708025861*math.Log(t) - 161.1195681661
		if t <= 19 {
			b = 0
		} else {
			b = 138.5177312231*math.Log(t-10) - 305.0447927307
		}
	} else {
		r = 329.698727446 * math.Pow(t-60, -0.1332047592)
		g = 288.1221695283 * math.Pow(t-60, -0.0755148492)
		b = 255
	}
	return color.RGBA{R: clamp255(r), G: clamp255(g), B: clamp255(b), A: 255}
}

func clamp255(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Floor(v))
}
