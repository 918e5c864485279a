// Package output writes finished frames to disk.
package output

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// WebPFile is a presentation surface that encodes the frame it receives
// to a lossless WebP file.
type WebPFile struct {
	Path string
}

// Present copies the raw RGBA bytes into an NRGBA image and encodes it.
func (s WebPFile) Present(pix []uint8, width, height int) error {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return WriteWebP(s.Path, img)
}

// WriteWebP encodes img to path, creating parent directories as needed.
func WriteWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("output: webp encode %s: %w", path, err)
	}
	return nil
}
