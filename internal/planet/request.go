package planet

import "starsystem-server/internal/models"

// Request selects how a slot is classified: by a natural zone-weighted roll
// or by forcing a specific class.
type Request struct {
	forced models.PlanetClass
}

// NaturalRoll classifies the slot from its zone.
func NaturalRoll() Request {
	return Request{}
}

// Forced skips the classification roll and uses class.
func Forced(class models.PlanetClass) Request {
	return Request{forced: class}
}

func (r Request) ForcedClass() (models.PlanetClass, bool) {
	return r.forced, r.forced != ""
}
