package material

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaultBlock = "\tshader \"complex.shader\"\n" +
	"\tg_flAmbientOcclusionDirectDiffuse \"0.000\"\n" +
	"\tg_flAmbientOcclusionDirectSpecular \"0.000\"\n" +
	"\tg_flModelTintAmount \"1.000\"\n" +
	"\tg_vColorTint \"[1.000000 1.000000 1.000000 0.000000]\"\n" +
	"\tg_flFadeExponent \"1.000\"\n" +
	"\tg_bFogEnabled \"1\"\n" +
	"\tg_flRoughnessScaleFactor \"1.000\"\n" +
	"\tg_nScaleTexCoordUByModelScaleAxis \"0\"\n" +
	"\tg_nScaleTexCoordVByModelScaleAxis \"0\"\n" +
	"\tg_vTexCoordOffset \"[0.000 0.000]\"\n" +
	"\tg_vTexCoordScale \"[1.000 1.000]\"\n" +
	"\tg_vTexCoordScrollSpeed \"[0.000 0.000]\"\n"

const head = "// THIS FILE IS AUTO-GENERATED\nLayer0\n{\n\tshader \"complex.shader\"\n\n"

func TestSynthesizeEmpty(t *testing.T) {
	a := Assignment{}
	got := string(Synthesize(DeriveFlags(a), a).Format())

	want := head + "\tg_flMetalness \"0.000\"\n" + defaultBlock + "}\n"
	assert.Equal(t, want, got)
}

func TestSynthesizeTextureOrder(t *testing.T) {
	a := Assignment{
		RoleTranslucency:  {Path: "materials/w/w_alpha.png"},
		RoleMetalness:     {Path: "materials/w/w_metal.png"},
		RoleColor:         {Path: "materials/w/w_albedo.png"},
		RoleSelfIllumMask: {Path: "materials/w/w_emit.png"},
	}
	got := string(Synthesize(DeriveFlags(a), a).Format())

	want := head +
		"\tF_SELF_ILLUM 1\n" +
		"\tF_METALNESS_TEXTURE 1\n" +
		defaultBlock +
		"\tTextureColor \"materials/w/w_albedo.png\"\n" +
		"\tTextureMetalness \"materials/w/w_metal.png\"\n" +
		"\tTextureSelfIllumMask \"materials/w/w_emit.png\"\n" +
		"\tTextureTranslucency \"materials/w/w_alpha.png\"\n" +
		"}\n"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, "g_flMetalness")
}

func TestSynthesizeDefaultParamsAlwaysPresent(t *testing.T) {
	cases := []Assignment{
		{},
		{RoleNormal: {Path: "n"}},
		{RoleMetalness: {Path: "m"}, RoleRoughness: {Path: "r"}, RoleAmbientOcclusion: {Path: "ao"}},
	}
	for _, a := range cases {
		got := string(Synthesize(DeriveFlags(a), a).Format())
		require.Contains(t, got, defaultBlock)
		assert.Len(t, DefaultParams, 13)
	}
}

type failWriter struct{}

func (w *failWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestEncodePropagatesWriteError(t *testing.T) {
	d := Synthesize(Flags{}, Assignment{})
	// Output larger than the bufio buffer forces a write through.
	d.Lines = append(d.Lines, Line{Key: "pad", Value: strings.Repeat("x", 8192)})
	err := d.Encode(&failWriter{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestEncodeMatchesFormat(t *testing.T) {
	a := Assignment{RoleColor: {Path: "materials/w/w_a.png"}}
	d := Synthesize(DeriveFlags(a), a)

	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	assert.Equal(t, d.Format(), buf.Bytes())
}
