package material

import (
	"path"
	"strings"
)

// Role is a texture purpose a descriptor can bind. The value is the descriptor key.
type Role string

const (
	RoleColor            Role = "TextureColor"
	RoleAmbientOcclusion Role = "TextureAmbientOcclusion"
	RoleNormal           Role = "TextureNormal"
	RoleRoughness        Role = "TextureRoughness"
	RoleMetalness        Role = "TextureMetalness"
	RoleSelfIllumMask    Role = "TextureSelfIllumMask"
	RoleTranslucency     Role = "TextureTranslucency"

	// RoleSpecular is never produced by SuffixTable; see DeriveFlags.
	RoleSpecular Role = "TextureSpecular"
)

// Roles lists the classifiable roles in declaration order.
// Descriptor texture lines and tie-breaks follow this order.
var Roles = []Role{
	RoleColor,
	RoleAmbientOcclusion,
	RoleNormal,
	RoleRoughness,
	RoleMetalness,
	RoleSelfIllumMask,
	RoleTranslucency,
}

// SuffixTable maps each role to the lowercase name fragments that select it.
// Existing asset folders depend on these exact fragments.
var SuffixTable = map[Role][]string{
	RoleColor:            {"_albedo", "_diffuse", "_basecolor", "_color", "_col", "_bc", "_diff", "_a"},
	RoleAmbientOcclusion: {"_ao", "_ambientocclusion", "_occlusion", "_ambocc", "_aoc", "_occl"},
	RoleNormal:           {"_normal", "_nor", "_norm", "_nrm", "_normalmap", "_nml", "_bump", "_n"},
	RoleRoughness:        {"_roughness", "_rou", "_rgh", "_gloss", "_gls", "_rough", "_specular"},
	RoleMetalness:        {"_metallic", "_met", "_metal", "_mtl", "_metalness", "_metall"},
	RoleSelfIllumMask:    {"_selfillum", "_illum", "_glowmask", "_emit", "_emissive", "_light"},
	RoleTranslucency:     {"_translucent", "_trans", "_opacity", "_opa", "_alpha"},
}

// PackedMarker is the name fragment identifying a packed metalness/roughness/AO texture.
const PackedMarker = "mra"

// rasterExtensions are the file extensions treated as decodable textures.
var rasterExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tga":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsRaster reports whether name has a recognized raster extension.
func IsRaster(name string) bool {
	return rasterExtensions[strings.ToLower(path.Ext(name))]
}

// Match is one role selected by a file name.
type Match struct {
	Role     Role
	Fragment string // longest fragment of Role found in the name
}

// RolesMatching returns every role with a fragment contained in lower, in Roles order.
func RolesMatching(lower string) []Match {
	var out []Match
	for _, role := range Roles {
		best := ""
		for _, frag := range SuffixTable[role] {
			if len(frag) > len(best) && strings.Contains(lower, frag) {
				best = frag
			}
		}
		if best != "" {
			out = append(out, Match{Role: role, Fragment: best})
		}
	}

	return out
}
