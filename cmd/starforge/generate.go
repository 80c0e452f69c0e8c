package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"starsystem-server/internal/models"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/rng"
	"starsystem-server/internal/shared/config"
	"starsystem-server/internal/system"
	"starsystem-server/internal/texture"
)

type planetFile struct {
	Index int `json:"index"`
	models.Planet
	Texture string `json:"texture"`
}

type systemFile struct {
	Seed      uint64               `json:"seed"`
	Requested models.SpectralClass `json:"requested_class"`
	Density   models.DensityTier   `json:"density"`
	Star      models.Star          `json:"star"`
	Zones     orbit.Zones          `json:"zones"`
	Planets   []planetFile         `json:"planets"`
}

func textureFileName(index int) string {
	return fmt.Sprintf("planet-%02d.png", index)
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a star system and write system.json plus one PNG per planet",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	cmd.Flags().String("class", string(models.SpectralRandom), "Spectral class (O, B, A, F, G, K, M or Random)")
	cmd.Flags().String("density", string(models.DensityDefault), "Planet density tier (None, Low, Medium, High, Extreme, Default)")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible system (default: random)")
	cmd.Flags().String("out", "", "Output directory (default: ./system-<seed>)")
	cmd.Flags().Int("size", 256, "Texture edge length in pixels")
	cmd.Flags().BoolP("verbose", "v", false, "Log generation stages")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	classFlag, _ := cmd.Flags().GetString("class")
	densityFlag, _ := cmd.Flags().GetString("density")
	outDir, _ := cmd.Flags().GetString("out")
	size, _ := cmd.Flags().GetInt("size")
	verbose, _ := cmd.Flags().GetBool("verbose")

	class, ok := models.ParseSpectralClass(classFlag)
	if !ok {
		return fmt.Errorf("unknown spectral class %q", classFlag)
	}
	density, ok := models.ParseDensityTier(densityFlag)
	if !ok {
		return fmt.Errorf("unknown density %q", densityFlag)
	}
	if size < config.MinTextureSize {
		return fmt.Errorf("texture size must be at least %d", config.MinTextureSize)
	}

	seed := rng.NewSeed()
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}
	if outDir == "" {
		outDir = fmt.Sprintf("system-%d", seed)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	star, data := system.NewGenerator(size, logger).Generate(rng.New(seed), class, density)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out := systemFile{
		Seed:      seed,
		Requested: class,
		Density:   density,
		Star:      star,
		Zones:     orbit.ZonesFor(star.Luminosity),
		Planets:   make([]planetFile, len(data.Planets)),
	}
	for i, p := range data.Planets {
		png, err := texture.EncodePNG(p.Texture)
		if err != nil {
			return err
		}
		name := textureFileName(i)
		if err := os.WriteFile(filepath.Join(outDir, name), png, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		out.Planets[i] = planetFile{Index: i, Planet: p, Texture: name}
	}

	doc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode system: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "system.json"), doc, 0o644); err != nil {
		return fmt.Errorf("failed to write system.json: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s (%s, %.2f Msun, %.0f K) seed %d\n", star.Name, star.SpectralClass, star.Mass, star.Temperature, seed)
	for _, p := range out.Planets {
		fmt.Fprintf(w, "  %2d  %-14s %-12s a=%7.3f AU  m=%8.2f Me  T=%5.0f K\n",
			p.Index, p.Name, p.Class, p.SemiMajorAxis, p.Mass, p.SurfaceTemp)
	}
	fmt.Fprintf(w, "wrote %d planets to %s\n", len(out.Planets), outDir)
	return nil
}
