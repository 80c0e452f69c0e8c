package planet

import (
	"starsystem-server/internal/models"
	"starsystem-server/internal/rng"
	"starsystem-server/internal/texture"
)

// Model derives a full planet record from one orbital slot.
type Model struct {
	// TextureSize is the edge length of synthesized textures. Zero means
	// texture.DefaultSize.
	TextureSize int
}

// Build runs a single classify-then-derive pass for the slot. The orbit is
// copied onto the result unchanged.
func (m Model) Build(src *rng.Source, slot models.Orbit, env Environment, req Request) models.Planet {
	eqTemp := EquilibriumTemperature(env.Luminosity, slot.SemiMajorAxis)

	class, forced := req.ForcedClass()
	if !forced {
		class = Classify(src, slot.SemiMajorAxis, env)
	}

	mass := SampleMass(src, class)
	comp := SampleComposition(src, class, slot.SemiMajorAxis, eqTemp, env)
	pressure := SamplePressure(src, class, mass)
	surfaceTemp := SurfaceTemperature(eqTemp, pressure)

	if class == models.PlanetTerrestrial && surfaceTemp > DesiccationTemp && comp.Water > 0 {
		comp = Desiccate(comp)
	}

	st := ComputeStructure(mass, comp, surfaceTemp)

	p := models.Planet{
		Orbit:           slot,
		MeanAnomaly:     src.Angle(),
		LongitudeOfNode: src.Angle(),
		Class:           class,
		Mass:            mass,
		Radius:          st.RadiusEarth,
		RadiusKm:        st.RadiusKm,
		Density:         st.Density,
		Composition:     comp,
		Pressure:        pressure,
		EquilibriumTemp: eqTemp,
		SurfaceTemp:     surfaceTemp,
		Color:           SummaryColor(class, comp),
	}
	p.Texture = texture.Synthesize(src, texture.InputFor(p), m.TextureSize)
	return p
}
