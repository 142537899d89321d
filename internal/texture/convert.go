package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Conversion records one legacy container unpacked next to itself.
type Conversion struct {
	Source  string
	Target  string
	Skipped bool // target already existed
}

// ConvertLegacy unpacks every OZJ/OZT container directly inside folder into a
// .jpg/.tga file with the same stem. Existing targets are left untouched so
// repeated runs produce the same folder.
func ConvertLegacy(folder string) ([]Conversion, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("texture: convert %s: %w", folder, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []Conversion
	for _, name := range names {
		ext := strings.ToLower(filepath.Ext(name))
		targetExt, ok := legacyTargets[ext]
		if !ok {
			continue
		}

		src := filepath.Join(folder, name)
		dst := filepath.Join(folder, strings.TrimSuffix(name, filepath.Ext(name))+targetExt)
		if _, err := os.Stat(dst); err == nil {
			out = append(out, Conversion{Source: src, Target: dst, Skipped: true})
			continue
		}

		payload, _, err := readPayload(src)
		if err != nil {
			return out, err
		}
		if err := os.WriteFile(dst, payload, 0644); err != nil {
			return out, fmt.Errorf("texture: write %s: %w", dst, err)
		}
		out = append(out, Conversion{Source: src, Target: dst})
	}

	return out, nil
}
