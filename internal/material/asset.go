package material

import (
	"image"
	"strings"
)

// AssetFile is one texture file of a folder snapshot.
type AssetFile struct {
	Name     string      // File name as listed
	Lower    string      // Lowercase name used for matching
	RelPath  string      // Path embedded in the descriptor, '/' separated
	Image    image.Image // Decoded pixels; set only for packed candidates
	Channels int         // Number of color channels, 0 when unknown
}

// NewAssetFile builds an AssetFile for name stored under relDir.
func NewAssetFile(relDir, name string) AssetFile {
	rel := name
	if relDir != "" {
		rel = strings.TrimSuffix(relDir, "/") + "/" + name
	}

	return AssetFile{
		Name:    name,
		Lower:   strings.ToLower(name),
		RelPath: rel,
	}
}

// IsPackedCandidate reports whether the file carries the packed marker and a raster
// extension. Planes written by the splitter never qualify, even when the marker
// survives in their base name ("rock_mra_2k_AO.tga").
func (f AssetFile) IsPackedCandidate() bool {
	return strings.Contains(f.Lower, PackedMarker) && IsRaster(f.Name) && !IsDerivedPlane(f.Name)
}

// Listing is the snapshot of one folder handed to Build.
// Files are in the order the rules are applied to them.
type Listing struct {
	Folder  string      // Base name of the folder; names the descriptor
	Files   []AssetFile // Candidate textures
	Notices []Notice    // Conditions reported while listing
}

// Source produces folder snapshots. Implementations own file system access,
// format conversion and image decoding.
type Source interface {
	List(folder string) (*Listing, error)
}
