package rng

import "math"

func (s *Source) buildPermutation() {
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for i := 255; i > 0; i-- {
		j := s.r.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func grad(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Noise evaluates 3-D lattice gradient noise over the Source's permutation
// table. It reads no randomness, so repeated calls with the same coordinates
// return the same value.
func (s *Source) Noise(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi := int(fx) & 255
	yi := int(fy) & 255
	zi := int(fz) & 255
	x -= fx
	y -= fy
	z -= fz
	u, v, w := fade(x), fade(y), fade(z)

	p := &s.perm
	a := int(p[xi]) + yi
	aa := int(p[a]) + zi
	ab := int(p[a+1]) + zi
	b := int(p[xi+1]) + yi
	ba := int(p[b]) + zi
	bb := int(p[b+1]) + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], x, y, z), grad(p[ba], x-1, y, z)),
			lerp(u, grad(p[ab], x, y-1, z), grad(p[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[aa+1], x, y, z-1), grad(p[ba+1], x-1, y, z-1)),
			lerp(u, grad(p[ab+1], x, y-1, z-1), grad(p[bb+1], x-1, y-1, z-1))))
}

// FBM sums octaves of Noise at doubling frequency and halving amplitude,
// normalized by the total amplitude. The result lies roughly in [-1, 1].
func (s *Source) FBM(x, y, z float64, octaves int) float64 {
	var total, norm float64
	freq, amp := 1.0, 1.0
	for range octaves {
		total += s.Noise(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return total / norm
}
