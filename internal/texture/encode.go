package texture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Encode writes img to w in the format named by ext (".png", ".tga" or ".webp").
// PNG keeps single-channel images as grayscale; TGA and WebP store RGBA.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".tga":
		return tga.Encode(w, toNRGBA(img))
	case ".webp":
		return nativewebp.Encode(w, toNRGBA(img), nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// SaveImage encodes img to path, picking the format from the extension.
func SaveImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}

	if err := Encode(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("texture: encode %s: %w", path, err)
	}

	return f.Close()
}
