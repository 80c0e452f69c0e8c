package models

import (
	"image"
	"image/color"
)

// Texture is a square RGBA surface map. Its pixels can only be read; the
// buffer is owned by the texture once constructed.
type Texture struct {
	size int
	pix  []uint8
}

// NewTexture takes ownership of pix, which must hold size*size*4 bytes.
func NewTexture(size int, pix []uint8) *Texture {
	if len(pix) != size*size*4 {
		panic("models: texture buffer does not match size")
	}
	return &Texture{size: size, pix: pix}
}

func (t *Texture) Size() int {
	return t.size
}

func (t *Texture) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= t.size || y >= t.size {
		return color.RGBA{}
	}
	i := (y*t.size + x) * 4
	return color.RGBA{R: t.pix[i], G: t.pix[i+1], B: t.pix[i+2], A: t.pix[i+3]}
}

func (t *Texture) ColorModel() color.Model {
	return color.RGBAModel
}

func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.size, t.size)
}

func (t *Texture) At(x, y int) color.Color {
	return t.RGBAAt(x, y)
}

// Pixels returns a copy of the raw RGBA bytes.
func (t *Texture) Pixels() []uint8 {
	out := make([]uint8, len(t.pix))
	copy(out, t.pix)
	return out
}
