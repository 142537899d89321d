package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Legacy container header sizes.
const (
	ozjHeaderSize = 24 // OZJ: 24-byte header + JPEG data
	oztHeaderSize = 4  // OZT: 4-byte header + TGA data
)

// legacyTargets maps a legacy container extension to the raster extension of its payload.
var legacyTargets = map[string]string{
	".ozj": ".jpg",
	".ozt": ".tga",
}

// codec decodes one raster format.
type codec struct {
	name   string
	decode func(io.Reader) (image.Image, error)
	config func(io.Reader) (image.Config, error)
}

var (
	pngCodec  = codec{"png", png.Decode, png.DecodeConfig}
	jpegCodec = codec{"jpeg", jpeg.Decode, jpeg.DecodeConfig}
	tgaCodec  = codec{"tga", tga.Decode, tga.DecodeConfig}
	bmpCodec  = codec{"bmp", bmp.Decode, bmp.DecodeConfig}
	tiffCodec = codec{"tiff", tiff.Decode, tiff.DecodeConfig}
	webpCodec = codec{"webp", webp.Decode, webp.DecodeConfig}
)

// codecs selects the decoder by extension. TGA has no magic number, and the
// tga package registers itself for any input, so image.Decode cannot be used.
var codecs = map[string]codec{
	".png":  pngCodec,
	".jpg":  jpegCodec,
	".jpeg": jpegCodec,
	".ozj":  jpegCodec,
	".tga":  tgaCodec,
	".ozt":  tgaCodec,
	".bmp":  bmpCodec,
	".tif":  tiffCodec,
	".tiff": tiffCodec,
	".webp": webpCodec,
}

// LoadTexture reads a raster or legacy container file and returns an NRGBA image.
func LoadTexture(path string) (*image.NRGBA, error) {
	data, c, err := readPayload(path)
	if err != nil {
		return nil, err
	}

	img, err := c.decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// LoadConfig decodes only the header of a texture file.
// The returned format name is one of png, jpeg, tga, bmp, tiff, webp.
func LoadConfig(path string) (image.Config, string, error) {
	data, c, err := readPayload(path)
	if err != nil {
		return image.Config{}, "", err
	}

	cfg, err := c.config(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return cfg, c.name, nil
}

// readPayload reads path, strips the header of legacy containers and picks the codec.
func readPayload(path string) ([]byte, codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := codecs[ext]
	if !ok {
		return nil, codec{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, codec{}, fmt.Errorf("texture: read %s: %w", path, err)
	}

	data, err := unwrapLegacy(ext, raw)
	if err != nil {
		return nil, codec{}, err
	}
	return data, c, nil
}

// unwrapLegacy returns the raster payload of an OZJ/OZT container, or raw unchanged.
func unwrapLegacy(ext string, raw []byte) ([]byte, error) {
	var header int
	switch ext {
	case ".ozj":
		header = ozjHeaderSize
	case ".ozt":
		header = oztHeaderSize
	default:
		return raw, nil
	}

	if len(raw) <= header {
		return nil, fmt.Errorf("%w: %s needs more than %d bytes, got %d", ErrTruncated, ext, header, len(raw))
	}
	return raw[header:], nil
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
