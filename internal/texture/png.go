package texture

import (
	"bytes"
	"fmt"
	"image/png"

	"starsystem-server/internal/models"
)

// EncodePNG serializes a texture for storage and HTTP delivery.
func EncodePNG(t *models.Texture) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, t); err != nil {
		return nil, fmt.Errorf("failed to encode texture: %w", err)
	}
	return buf.Bytes(), nil
}
