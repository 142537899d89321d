package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmatgen/internal/batch"
)

func writePNG(t *testing.T, path string, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < 4; i++ {
		img.SetNRGBA(i%2, i/2, c)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

// materials builds <tmp>/materials/wall with a color map and a packed texture.
func materials(t *testing.T) string {
	t.Helper()
	for _, k := range []string{"VMATGEN_ROOT", "VMATGEN_PREFIX", "VMATGEN_LOG_FILE", "VMATGEN_SPLIT_FORMAT", "VMATGEN_WORKERS"} {
		t.Setenv(k, "")
	}
	root := filepath.Join(t.TempDir(), "materials")
	writePNG(t, filepath.Join(root, "wall", "wall_albedo.png"), color.NRGBA{R: 90, G: 80, B: 70, A: 255})
	writePNG(t, filepath.Join(root, "wall", "wall_mra.png"), color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--color", "never", "--env-file", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdStructure(t *testing.T) {
	root := NewRootCmd("test")

	want := map[string]bool{"generate": false, "classify": false, "split": false, "organize": false, "convert": false}
	for _, sub := range root.Commands() {
		name := sub.Name()
		if _, ok := want[name]; !ok {
			continue
		}
		want[name] = true
		assert.NotEmpty(t, sub.Short, "%s should have a Short description", name)
		assert.NotNil(t, sub.RunE, "%s should have a RunE", name)
	}
	for name, found := range want {
		assert.True(t, found, "%s not registered", name)
	}

	for _, flag := range []string{"config", "env-file", "log-file", "color", "verbose"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestGenerateCommand(t *testing.T) {
	root := materials(t)
	report := filepath.Join(t.TempDir(), "report.json")

	_, err := execute(t, "generate", root, "--workers", "1", "--report", report)
	require.NoError(t, err)

	wall := filepath.Join(root, "wall")
	data, err := os.ReadFile(filepath.Join(wall, "wall.vmat"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\tTextureColor \"materials/wall/wall_albedo.png\"\n")
	assert.Contains(t, string(data), "\tTextureRoughness \"materials/wall/wall_Roughness.png\"\n")
	assert.Contains(t, string(data), "\tF_METALNESS_TEXTURE 1\n")

	for _, name := range []string{"wall_Metalness.png", "wall_Roughness.png", "wall_AO.png"} {
		assert.FileExists(t, filepath.Join(wall, name))
	}
	assert.NoFileExists(t, filepath.Join(wall, "wall_mra.png"))
	assert.FileExists(t, report)
}

func TestGeneratePrefixFlag(t *testing.T) {
	root := materials(t)

	_, err := execute(t, "generate", root, "--prefix", "content/materials", "--keep-packed")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "wall", "wall.vmat"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"content/materials/wall/wall_albedo.png\"")
	assert.FileExists(t, filepath.Join(root, "wall", "wall_mra.png"))
}

func TestGenerateMissingRoot(t *testing.T) {
	materials(t)

	_, err := execute(t, "generate", filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, batch.ErrRootMissing)
}

func TestGenerateRejectsSplitFormat(t *testing.T) {
	root := materials(t)

	_, err := execute(t, "generate", root, "--split-format", "gif")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(root, "wall", "wall.vmat"))
}

func TestClassifyWritesNothing(t *testing.T) {
	root := materials(t)
	wall := filepath.Join(root, "wall")

	out, err := execute(t, "classify", wall)
	require.NoError(t, err)

	assert.Contains(t, out, "materials/wall/wall_albedo.png")
	assert.Contains(t, out, "TextureAmbientOcclusion")
	assert.Contains(t, out, "// THIS FILE IS AUTO-GENERATED")
	assert.NoFileExists(t, filepath.Join(wall, "wall.vmat"))
	assert.NoFileExists(t, filepath.Join(wall, "wall_AO.png"))
	assert.FileExists(t, filepath.Join(wall, "wall_mra.png"))
}

func TestSplitCommand(t *testing.T) {
	materials(t)
	file := filepath.Join(t.TempDir(), "packed.png")
	writePNG(t, file, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	_, err := execute(t, "split", file, "--split-format", "tga")
	require.NoError(t, err)

	dir := filepath.Dir(file)
	for _, name := range []string{"packed_Metalness.tga", "packed_Roughness.tga", "packed_AO.tga"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.FileExists(t, file)
}

func TestOrganizeDryRun(t *testing.T) {
	materials(t)
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "rock_wall_color.png"), color.NRGBA{A: 255})

	_, err := execute(t, "organize", dir, "--dry-run")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "rock_wall_color.png"))

	_, err = execute(t, "organize", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "rock_wall", "rock_wall_color.png"))
}

func TestConvertEmptyRoot(t *testing.T) {
	root := materials(t)

	_, err := execute(t, "convert", root)
	require.NoError(t, err)
}
