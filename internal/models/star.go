package models

type SpectralClass string

const (
	SpectralO SpectralClass = "O"
	SpectralB SpectralClass = "B"
	SpectralA SpectralClass = "A"
	SpectralF SpectralClass = "F"
	SpectralG SpectralClass = "G"
	SpectralK SpectralClass = "K"
	SpectralM SpectralClass = "M"

	// SpectralRandom leaves the class unconstrained; mass is drawn from the
	// initial-mass function instead of a class bracket.
	SpectralRandom SpectralClass = "Random"
)

// SpectralClasses lists the concrete classes from hottest to coolest.
var SpectralClasses = []SpectralClass{
	SpectralO, SpectralB, SpectralA, SpectralF, SpectralG, SpectralK, SpectralM,
}

type Star struct {
	Name          string        `json:"name"`
	Mass          float64       `json:"mass"`        // solar masses
	Radius        float64       `json:"radius"`      // solar radii
	Luminosity    float64       `json:"luminosity"`  // solar units
	Temperature   float64       `json:"temperature"` // K
	Metallicity   float64       `json:"metallicity"` // [Fe/H] dex
	AbsMagnitude  float64       `json:"absolute_magnitude"`
	SpectralClass SpectralClass `json:"spectral_class"`
	Color         string        `json:"color"`
}
