package system

import (
	"log/slog"
	"math"

	"starsystem-server/internal/models"
	"starsystem-server/internal/naming"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/planet"
	"starsystem-server/internal/rng"
	"starsystem-server/internal/star"
)

type tierRule struct {
	lo, hi int // draw from [lo, hi)
	cap    int // 0 means uncapped
}

var tierRules = map[models.DensityTier]tierRule{
	models.DensityLow:     {lo: 1, hi: 6, cap: 5},
	models.DensityMedium:  {lo: 4, hi: 13, cap: 12},
	models.DensityHigh:    {lo: 12, hi: 31, cap: 30},
	models.DensityExtreme: {lo: 25, hi: 55},
	models.DensityDefault: {lo: 3, hi: 15},
}

const (
	lowMassStar    = 0.5
	lowMassCap     = 12
	balanceMinimum = 7
	minTerrestrial = 0.3
)

// TargetCount draws the number of planets to place around s. Metal-rich
// stars get more, metal-poor ones fewer. Every tier except None asks for at
// least one planet.
func TargetCount(src *rng.Source, s models.Star, tier models.DensityTier) int {
	if tier == models.DensityNone {
		return 0
	}
	rule, ok := tierRules[tier]
	if !ok {
		rule = tierRules[models.DensityDefault]
	}

	n := rule.lo + src.IntN(rule.hi-rule.lo)
	n += int(math.Round(s.Metallicity * 4))
	if rule.cap > 0 {
		n = min(n, rule.cap)
	}
	if s.Mass < lowMassStar && tier != models.DensityExtreme {
		n = min(n, lowMassCap)
	}
	return max(1, n)
}

// EnvironmentFor derives the per-slot context shared by every planet of s.
func EnvironmentFor(s models.Star) planet.Environment {
	z := orbit.ZonesFor(s.Luminosity)
	return planet.Environment{
		Luminosity:     s.Luminosity,
		StellarMass:    s.Mass,
		FrostLine:      z.FrostLine,
		HabitableInner: z.HabitableInner,
		HabitableOuter: z.HabitableOuter,
	}
}

// Generator runs the star and planet pipeline.
type Generator struct {
	model  planet.Model
	logger *slog.Logger
}

func NewGenerator(textureSize int, logger *slog.Logger) *Generator {
	return &Generator{
		model:  planet.Model{TextureSize: textureSize},
		logger: logger,
	}
}

// GenerateStar draws an unnamed star. Unknown classes fall back to one solar
// mass.
func (g *Generator) GenerateStar(src *rng.Source, class models.SpectralClass) models.Star {
	s := star.Generate(src, class)
	g.logger.Debug("Star generated",
		"component", "system_generator",
		"requested_class", class,
		"spectral_class", s.SpectralClass,
		"mass", s.Mass,
		"luminosity", s.Luminosity,
	)
	return s
}

// GeneratePlanets places, builds and balances the planets of s. Names are
// left empty.
func (g *Generator) GeneratePlanets(src *rng.Source, s models.Star, tier models.DensityTier) models.SystemData {
	logger := g.logger.With("component", "system_generator", "operation", "generate_planets", "density", tier)

	env := EnvironmentFor(s)
	target := TargetCount(src, s, tier)
	if target == 0 {
		logger.Debug("No planets requested")
		return models.SystemData{Planets: []models.Planet{}, FrostLine: env.FrostLine}
	}

	slots := orbit.Generate(src, s.Luminosity, target)
	logger.Debug("Orbits placed", "target", target, "placed", len(slots))

	planets := make([]models.Planet, len(slots))
	for i, slot := range slots {
		planets[i] = g.model.Build(src, slot, env, planet.NaturalRoll())
	}

	planets = Balance(src, planets, env, g.model)
	return models.SystemData{Planets: planets, FrostLine: env.FrostLine}
}

// Generate runs the whole pipeline including naming.
func (g *Generator) Generate(src *rng.Source, class models.SpectralClass, tier models.DensityTier) (models.Star, models.SystemData) {
	s := g.GenerateStar(src, class)
	data := g.GeneratePlanets(src, s, tier)
	return naming.Apply(src, s, data)
}

// RequiredTerrestrial is the minimum number of terrestrial planets a system
// of n planets must hold after balancing.
func RequiredTerrestrial(n int) int {
	if n <= balanceMinimum {
		return 0
	}
	return int(math.Ceil(minTerrestrial * float64(n)))
}

// Balance returns planets with enough slots rebuilt as terrestrial worlds to
// meet RequiredTerrestrial. Rebuilt slots keep their orbit and position; the
// input slice is not modified.
func Balance(src *rng.Source, planets []models.Planet, env planet.Environment, model planet.Model) []models.Planet {
	required := RequiredTerrestrial(len(planets))
	have := models.SystemData{Planets: planets}.CountClass(models.PlanetTerrestrial)
	if have >= required {
		return planets
	}

	var candidates []int
	for i, p := range planets {
		if p.Class != models.PlanetTerrestrial {
			candidates = append(candidates, i)
		}
	}
	src.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	out := make([]models.Planet, len(planets))
	copy(out, planets)
	for _, idx := range candidates[:min(required-have, len(candidates))] {
		out[idx] = model.Build(src, planets[idx].Orbit, env, planet.Forced(models.PlanetTerrestrial))
	}
	return out
}
