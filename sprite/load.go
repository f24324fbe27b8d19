package sprite

import (
	"fmt"
	"image"
	"os"

	// Image decoders registered for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// Load decodes an image file and converts it to a sprite.
// Decode failures are returned to the caller, which decides whether the
// failure is fatal; the icon factory treats it as "fall back"
func Load(path string, targetWidth int) (Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sprite{}, fmt.Errorf("open icon %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Sprite{}, fmt.Errorf("decode icon %s: %w", path, err)
	}

	return FromImage(img, targetWidth), nil
}
