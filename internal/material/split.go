package material

import (
	"fmt"
	"image"
	"image/color"
	"path"
	"strings"
)

// Derived plane name suffixes, in R, G, B order.
var packedPlanes = []struct {
	role   Role
	suffix string
}{
	{RoleMetalness, "_Metalness"},
	{RoleRoughness, "_Roughness"},
	{RoleAmbientOcclusion, "_AO"},
}

// Plane is a single-channel texture derived from a packed texture.
type Plane struct {
	Role    Role
	Name    string
	RelPath string
	Image   *image.Gray
}

// Split is the decomposition of one packed texture.
type Split struct {
	Source AssetFile
	Planes []Plane // Metalness, Roughness, AmbientOcclusion
}

// SplitPacked decomposes the first packed candidate in files.
// It returns nil when no candidate exists or the candidate cannot be split;
// the latter is reported as a NoticeSplitFailed and the file stays classifiable.
// Later candidates are never considered.
func SplitPacked(files []AssetFile, format string) (*Split, []Notice) {
	for _, f := range files {
		if !f.IsPackedCandidate() {
			continue
		}

		out, err := SplitFile(f, format)
		if err != nil {
			return nil, []Notice{{Kind: NoticeSplitFailed, File: f.RelPath, Message: err.Error()}}
		}
		return out, nil
	}

	return nil, nil
}

// SplitFile decomposes f regardless of its name. f.Image must be set.
func SplitFile(f AssetFile, format string) (*Split, error) {
	planes, err := splitFile(f)
	if err != nil {
		return nil, err
	}

	base := PackedBaseName(f.Name)
	ext := PlaneExt(f.Name, format)
	dir := relDir(f)

	out := &Split{Source: f}
	for i, p := range packedPlanes {
		name := base + p.suffix + ext
		out.Planes = append(out.Planes, Plane{
			Role:    p.role,
			Name:    name,
			RelPath: NewAssetFile(dir, name).RelPath,
			Image:   planes[i],
		})
	}

	return out, nil
}

// splitFile checks the channel count and splits the decoded image.
func splitFile(f AssetFile) ([3]*image.Gray, error) {
	if f.Image == nil {
		return [3]*image.Gray{}, ErrNotPacked
	}

	ch := f.Channels
	if ch == 0 {
		ch = ChannelCount(f.Image.ColorModel())
	}
	if ch < 3 {
		return [3]*image.Gray{}, fmt.Errorf("%w: %d", ErrNoChannels, ch)
	}

	return SplitChannels(f.Image), nil
}

// SplitChannels returns the red, green and blue channels of img as separate planes.
// Values are taken non-premultiplied so alpha does not darken the planes.
func SplitChannels(img image.Image) [3]*image.Gray {
	b := img.Bounds()
	var out [3]*image.Gray
	for i := range out {
		out[i] = image.NewGray(b)
	}

	if src, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				si := src.PixOffset(x, y)
				di := out[0].PixOffset(x, y)
				out[0].Pix[di] = src.Pix[si]
				out[1].Pix[di] = src.Pix[si+1]
				out[2].Pix[di] = src.Pix[si+2]
			}
		}
		return out
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			di := out[0].PixOffset(x, y)
			out[0].Pix[di] = c.R
			out[1].Pix[di] = c.G
			out[2].Pix[di] = c.B
		}
	}

	return out
}

// ChannelCount returns the number of independent channels a color model carries.
func ChannelCount(m color.Model) int {
	switch m {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	case color.YCbCrModel:
		return 3
	}
	return 4
}

// PackedBaseName strips the extension and the trailing marker from a packed texture name.
// "surf_mra.png" and "surf_MRA.tga" both become "surf".
func PackedBaseName(name string) string {
	stem := strings.TrimSuffix(name, path.Ext(name))
	lower := strings.ToLower(stem)

	switch {
	case strings.HasSuffix(lower, "_"+PackedMarker):
		return stem[:len(stem)-len(PackedMarker)-1]
	case strings.HasSuffix(lower, PackedMarker) && len(stem) > len(PackedMarker):
		return stem[:len(stem)-len(PackedMarker)]
	}

	return stem
}

// IsDerivedPlane reports whether name ends in one of the plane suffixes
// (_Metalness, _Roughness, _AO), compared case-insensitively.
func IsDerivedPlane(name string) bool {
	stem := strings.ToLower(strings.TrimSuffix(name, path.Ext(name)))
	for _, p := range packedPlanes {
		if strings.HasSuffix(stem, strings.ToLower(p.suffix)) {
			return true
		}
	}
	return false
}

// PlaneExt returns the extension derived planes are written with.
// An empty format keeps the source extension when it can be encoded.
func PlaneExt(name, format string) string {
	if format != "" {
		return "." + strings.TrimPrefix(strings.ToLower(format), ".")
	}

	ext := path.Ext(name)
	switch strings.ToLower(ext) {
	case ".png", ".tga", ".webp":
		return ext
	}

	return ".png"
}

// relDir returns the directory part of f.RelPath.
func relDir(f AssetFile) string {
	return strings.TrimSuffix(strings.TrimSuffix(f.RelPath, f.Name), "/")
}
