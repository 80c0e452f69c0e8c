package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"starsystem-server/internal/models"
	"starsystem-server/internal/orbit"
	"starsystem-server/internal/shared/errors"
	"starsystem-server/internal/shared/response"
	"starsystem-server/internal/system"
)

type GenerateRequest struct {
	SpectralClass string  `json:"spectral_class"`
	Density       string  `json:"density"`
	Seed          *uint64 `json:"seed,omitempty"`
}

type PlanetResponse struct {
	Index int `json:"index"`
	models.Planet
	TextureURL string `json:"texture_url"`
}

type SystemResponse struct {
	ID             uuid.UUID            `json:"id"`
	Seed           uint64               `json:"seed"`
	RequestedClass models.SpectralClass `json:"requested_class"`
	Density        models.DensityTier   `json:"density"`
	Star           models.Star          `json:"star"`
	FrostLine      float64              `json:"frost_line"`
	Zones          orbit.Zones          `json:"zones"`
	Planets        []PlanetResponse     `json:"planets"`
	CreatedAt      time.Time            `json:"created_at"`
}

func textureURL(id uuid.UUID, index int) string {
	return fmt.Sprintf("/api/systems/%s/planets/%d/texture.png", id, index)
}

func NewSystemResponse(rec *system.Record) SystemResponse {
	planets := make([]PlanetResponse, len(rec.Planets))
	for i, p := range rec.Planets {
		planets[i] = PlanetResponse{Index: i, Planet: p, TextureURL: textureURL(rec.ID, i)}
	}
	return SystemResponse{
		ID:             rec.ID,
		Seed:           rec.Seed,
		RequestedClass: rec.SpectralClass,
		Density:        rec.Density,
		Star:           rec.Star,
		FrostLine:      rec.Zones.FrostLine,
		Zones:          rec.Zones,
		Planets:        planets,
		CreatedAt:      rec.CreatedAt,
	}
}

type SystemHandler struct {
	service        *system.Service
	defaultDensity models.DensityTier
}

func NewSystemHandler(service *system.Service, defaultDensity models.DensityTier) *SystemHandler {
	return &SystemHandler{service: service, defaultDensity: defaultDensity}
}

func (h *SystemHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "generate_system")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	var req GenerateRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid JSON in request body", err))
		return
	}

	class, ok := models.ParseSpectralClass(req.SpectralClass)
	if !ok {
		response.Error(w, r, logger, errors.Validationf("unknown spectral class %q", req.SpectralClass))
		return
	}

	density := h.defaultDensity
	if req.Density != "" {
		density, ok = models.ParseDensityTier(req.Density)
		if !ok {
			response.Error(w, r, logger, errors.Validationf("unknown density %q", req.Density))
			return
		}
	}

	rec, err := h.service.Generate(ctx, system.GenerateRequest{
		SpectralClass: class,
		Density:       density,
		Seed:          req.Seed,
	})
	if err != nil {
		serviceError(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, NewSystemResponse(rec))
}

// serviceError keeps storage details out of the response body.
func serviceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if errors.GetType(err) == errors.ErrorTypeExternal {
		response.ErrorWithMessage(w, r, logger, err, "storage temporarily unavailable")
		return
	}
	response.Error(w, r, logger, err)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return uuid.Nil, errors.Validation("system ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WrapValidation("invalid system ID format", err)
	}
	return id, nil
}

func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_system")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	rec, err := h.service.Get(ctx, id)
	if err != nil {
		serviceError(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, NewSystemResponse(rec))
}

func (h *SystemHandler) Texture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_planet_texture")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid planet index format", err))
		return
	}

	png, err := h.service.Texture(ctx, id, index)
	if err != nil {
		serviceError(w, r, logger, err)
		return
	}

	// Stored textures never change.
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		logger.Debug("Client went away while sending texture", "error", err)
	}
}

func (h *SystemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "delete_system")

	if r.Method != http.MethodDelete {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		serviceError(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusNoContent, nil)
}
