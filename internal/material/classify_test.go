package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func files(relDir string, names ...string) []AssetFile {
	out := make([]AssetFile, 0, len(names))
	for _, n := range names {
		out = append(out, NewAssetFile(relDir, n))
	}
	return out
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		want Role
	}{
		{"wall_a.png", RoleColor},
		{"wall_albedo.png", RoleColor},
		{"wall_ao.png", RoleAmbientOcclusion},
		{"wall_aoc.png", RoleAmbientOcclusion},
		{"wall_basecolor_ao.png", RoleAmbientOcclusion},
		{"wall_occlusion.tga", RoleAmbientOcclusion},
		{"wall_nrm.png", RoleNormal},
		{"wall_n.png", RoleNormal},
		{"wall_specular.png", RoleRoughness},
		{"wall_gloss.jpg", RoleRoughness},
		{"wall_metallic.png", RoleMetalness},
		{"wall_emissive.png", RoleSelfIllumMask},
		{"wall_alpha.png", RoleTranslucency},
		{"wall_opacity.png", RoleTranslucency},
		{"wall_lightwood_albedo.png", RoleColor},
		{"wall_metal_normal.png", RoleNormal},
		{"wall_metal_rough.png", RoleRoughness},
		{"stone_a_normal.png", RoleNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(lower(tt.name))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnmatched(t *testing.T) {
	_, ok := Resolve("readme.png")
	assert.False(t, ok)
}

func TestRolesMatchingLongestFragment(t *testing.T) {
	m := RolesMatching("rock_normalmap.png")
	require.Len(t, m, 1)
	assert.Equal(t, RoleNormal, m[0].Role)
	assert.Equal(t, "_normalmap", m[0].Fragment)
}

func TestClassifyFirstMatchWins(t *testing.T) {
	a := Assignment{}
	notices := Classify(files("materials/wall", "wall_basecolor.png", "wall_albedo.png"), a)

	assert.Equal(t, "materials/wall/wall_basecolor.png", a[RoleColor].Path)
	assert.Equal(t, FromSuffix, a[RoleColor].Source)
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeCollision, notices[0].Kind)
	assert.Equal(t, "materials/wall/wall_albedo.png", notices[0].File)
}

func TestClassifyUnmatchedIsReported(t *testing.T) {
	a := Assignment{}
	notices := Classify(files("materials/wall", "wall_albedo.png", "notes.png"), a)

	assert.Len(t, a, 1)
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeUnmatched, notices[0].Kind)
}

func TestClassifyKeepsPreassigned(t *testing.T) {
	a := Assignment{
		RoleMetalness: {Path: "materials/s/s_Metalness.png", Source: FromPacked},
	}
	notices := Classify(files("materials/s", "s_Metalness.png", "s_metallic.png"), a)

	assert.Equal(t, FromPacked, a[RoleMetalness].Source)
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeCollision, notices[0].Kind)
	assert.Equal(t, "materials/s/s_metallic.png", notices[0].File)
}

func TestDeriveFlags(t *testing.T) {
	tests := []struct {
		name string
		a    Assignment
		want Flags
	}{
		{"empty", Assignment{}, Flags{}},
		{"self_illum", Assignment{RoleSelfIllumMask: {Path: "x"}}, Flags{SelfIllum: true}},
		{"metal_suffix", Assignment{RoleMetalness: {Path: "x", Source: FromSuffix}}, Flags{MetalnessTexture: true}},
		{"metal_packed", Assignment{RoleMetalness: {Path: "x", Source: FromPacked}}, Flags{MetalnessTexture: true}},
		{"specular_source_is_roughness", Assignment{RoleRoughness: {Path: "w_specular.png"}}, Flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveFlags(tt.a))
		})
	}
}

func lower(s string) string { return NewAssetFile("", s).Lower }
