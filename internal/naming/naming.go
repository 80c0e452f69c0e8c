// Package naming assigns display names to a finished system. It only ever
// writes name fields.
package naming

import (
	"fmt"
	"math"

	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
)

var catalogPrefixes = []string{
	"Kepler", "Gliese", "HD", "HIP", "K2", "TOI", "WASP", "CoRoT", "Luyten", "Trappist", "Ross", "Wolf",
}

var greekLetters = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa",
}

var constellations = []string{
	"Centauri", "Ceti", "Eridani", "Cygni", "Lyrae", "Scorpii", "Andromedae", "Draconis",
	"Cassiopeiae", "Orionis", "Pegasi", "Ursae Majoris",
}

// Pantheon is a themed pool of planet names.
type Pantheon struct {
	Name  string
	Names []string
}

var pantheons = []Pantheon{
	{"Norse", []string{
		"Odin", "Thor", "Loki", "Freya", "Heimdall", "Tyr", "Baldr", "Frigg", "Skadi", "Njord",
		"Freyr", "Idunn", "Bragi", "Forseti", "Sif", "Hel", "Fenrir", "Jormungandr", "Surtr", "Ymir",
		"Aegir", "Ran", "Vidar", "Vali", "Magni", "Modi", "Thrud", "Ull", "Sol", "Mani",
	}},
	{"Greek", []string{
		"Zeus", "Hera", "Poseidon", "Demeter", "Ares", "Athena", "Apollo", "Artemis", "Hephaestus", "Aphrodite",
		"Hermes", "Dionysus", "Hades", "Hestia", "Persephone", "Eros", "Pan", "Nike", "Nemesis", "Tyche",
		"Hebe", "Helios", "Selene", "Eos", "Gaia", "Uranus", "Cronus", "Rhea", "Oceanus", "Tethys",
	}},
	{"Roman", []string{
		"Jupiter", "Juno", "Neptune", "Ceres", "Mars", "Minerva", "Apollo", "Diana", "Vulcan", "Venus",
		"Mercury", "Bacchus", "Pluto", "Vesta", "Proserpina", "Cupid", "Faunus", "Victoria", "Fortuna", "Juventas",
		"Sol", "Luna", "Aurora", "Terra", "Caelus", "Saturn", "Ops", "Janus", "Quirinus", "Bellona",
	}},
	{"Egyptian", []string{
		"Ra", "Osiris", "Isis", "Horus", "Set", "Anubis", "Thoth", "Bastet", "Sekhmet", "Hathor",
		"Ptah", "Maat", "Geb", "Nut", "Shu", "Tefnut", "Amun", "Mut", "Khonsu", "Sobek",
		"Khepri", "Atum", "Neith", "Serqet", "Bes", "Taweret", "Hapi", "Imhotep", "Khnum", "Anuket",
	}},
	{"Sumerian", []string{
		"Anu", "Enlil", "Enki", "Ninhursag", "Inanna", "Utu", "Nanna", "Marduk", "Nergal", "Ereshkigal",
		"Ninurta", "Nabu", "Ishtar", "Dumuzi", "Tiamat", "Apsu", "Kingu", "Lahmu", "Lahamu", "Anshar",
		"Kishar", "Sin", "Shamash", "Adad", "Ashur", "Gula", "Nisaba", "Nammu", "Ninkasi", "Geshtinanna",
	}},
	{"Celtic", []string{
		"Dagda", "Morrigan", "Lugh", "Brigid", "Nuada", "Ogma", "Manannan", "Danu", "Belenus", "Cernunnos",
		"Epona", "Aengus", "Boann", "Lir", "Macha", "Badb", "Nemain", "Goibniu", "Creidhne", "Luchta",
		"Dian Cecht", "Bodb Derg", "Midir", "Arianrhod", "Gwydion", "Rhiannon", "Pwyll", "Bran", "Math", "Taliesin",
	}},
	{"Japanese", []string{
		"Amaterasu", "Tsukuyomi", "Susanoo", "Izanagi", "Izanami", "Kagutsuchi", "Raijin", "Fujin", "Hachiman", "Inari",
		"Ebisu", "Daikokuten", "Bishamonten", "Benzaiten", "Fukurokuju", "Jurojin", "Hotei", "Uzume", "Sarutahiko", "Ninigi",
		"Konohanasakuya", "Omoikane", "Takemikazuchi", "Futsunushi", "Ryujin", "Suijin", "Owatatsumi", "Toyotama-hime", "Uke Mochi", "Kuraokami",
	}},
	{"Hindu", []string{
		"Indra", "Agni", "Varuna", "Vayu", "Soma", "Surya", "Yama", "Vishnu", "Shiva", "Brahma",
		"Lakshmi", "Parvati", "Saraswati", "Ganesha", "Kartikeya", "Hanuman", "Rama", "Krishna", "Durga", "Kali",
		"Sita", "Radha", "Kubera", "Kama", "Dyaus", "Prithvi", "Ushas", "Rudra", "Maruts", "Adityas",
	}},
}

// Pantheons returns the available themes.
func Pantheons() []Pantheon {
	return pantheons
}

func pick(src *rng.Source, xs []string) string {
	return xs[src.IntN(len(xs))]
}

func catalogNumber(src *rng.Source, lo, hi float64) int {
	return int(math.Floor(src.Uniform(lo, hi)))
}

// StarName draws a catalog-style ("Kepler-186") or Bayer-style
// ("Alpha Centauri") designation.
func StarName(src *rng.Source) string {
	r := src.Float64()
	switch {
	case r < 0.4:
		return fmt.Sprintf("%s-%d", pick(src, catalogPrefixes), catalogNumber(src, 10, 9000))
	case r < 0.7:
		return pick(src, greekLetters) + " " + pick(src, constellations)
	default:
		return fmt.Sprintf("%s-%d", pick(src, catalogPrefixes), catalogNumber(src, 100, 5000))
	}
}

// PlanetNames draws n names from one shuffled pantheon. Slots past the end
// of the pantheon are numbered "<Pantheon>-<k>" with k counting from 1.
func PlanetNames(src *rng.Source, n int) []string {
	theme := pantheons[src.IntN(len(pantheons))]
	pool := append([]string(nil), theme.Names...)
	src.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	names := make([]string, n)
	for i := range names {
		if i < len(pool) {
			names[i] = pool[i]
		} else {
			names[i] = fmt.Sprintf("%s-%d", theme.Name, i+1)
		}
	}
	return names
}

// Apply returns copies of star and data with names filled in. Physical and
// orbital fields are untouched.
func Apply(src *rng.Source, star models.Star, data models.SystemData) (models.Star, models.SystemData) {
	star.Name = StarName(src)

	names := PlanetNames(src, len(data.Planets))
	planets := make([]models.Planet, len(data.Planets))
	for i, p := range data.Planets {
		p.Name = names[i]
		planets[i] = p
	}
	data.Planets = planets
	return star, data
}
