package models

type DensityTier string

const (
	DensityNone    DensityTier = "None"
	DensityLow     DensityTier = "Low"
	DensityMedium  DensityTier = "Medium"
	DensityHigh    DensityTier = "High"
	DensityExtreme DensityTier = "Extreme"
	DensityDefault DensityTier = "Default"
)

// ParseDensityTier matches one of the named tiers. Empty input selects the
// default tier.
func ParseDensityTier(s string) (DensityTier, bool) {
	switch DensityTier(s) {
	case "":
		return DensityDefault, true
	case DensityNone, DensityLow, DensityMedium, DensityHigh, DensityExtreme, DensityDefault:
		return DensityTier(s), true
	}
	return DensityDefault, false
}

// ParseSpectralClass matches a concrete class or Random. Empty input is
// treated as Random.
func ParseSpectralClass(s string) (SpectralClass, bool) {
	if s == "" {
		return SpectralRandom, true
	}
	c := SpectralClass(s)
	if c == SpectralRandom {
		return c, true
	}
	for _, known := range SpectralClasses {
		if c == known {
			return c, true
		}
	}
	return c, false
}

// SystemData is the ordered planet sequence (ascending semi-major axis) and
// the frost line it was generated against.
type SystemData struct {
	Planets   []Planet `json:"planets"`
	FrostLine float64  `json:"frost_line"`
}

func (s SystemData) CountClass(c PlanetClass) int {
	n := 0
	for _, p := range s.Planets {
		if p.Class == c {
			n++
		}
	}
	return n
}
