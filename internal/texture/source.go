package texture

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"vmatgen/internal/material"
)

// DirSource lists texture folders from the local file system.
// It implements material.Source.
type DirSource struct {
	// Prefix starts every descriptor path, e.g. "materials".
	Prefix string
	// Root, when set, is the directory folders are made relative to;
	// otherwise only the folder's base name follows Prefix.
	Root string
}

// List returns the raster files directly inside folder, sorted by name.
// Files that cannot be decoded are left out and reported as notices.
// Only the first packed candidate that decodes carries pixels; the splitter
// never looks past it.
func (s DirSource) List(folder string) (*material.Listing, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("texture: list %s: %w", folder, err)
	}

	relDir, err := s.relDir(folder)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && material.IsRaster(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	l := &material.Listing{Folder: filepath.Base(folder)}
	packed := false
	for _, name := range names {
		f := material.NewAssetFile(relDir, name)
		load := !packed && f.IsPackedCandidate()
		f, notice := probe(filepath.Join(folder, name), f, load)
		if notice != nil {
			l.Notices = append(l.Notices, *notice)
			continue
		}
		packed = packed || load
		l.Files = append(l.Files, f)
	}

	return l, nil
}

// probe checks that the file decodes and, with load set, reads its pixels.
func probe(fsPath string, f material.AssetFile, load bool) (material.AssetFile, *material.Notice) {
	cfg, _, err := LoadConfig(fsPath)
	if err != nil {
		return f, &material.Notice{Kind: material.NoticeDecodeFailed, File: f.RelPath, Message: err.Error()}
	}
	f.Channels = material.ChannelCount(cfg.ColorModel)

	if !load {
		return f, nil
	}

	img, err := LoadTexture(fsPath)
	if err != nil {
		return f, &material.Notice{Kind: material.NoticeDecodeFailed, File: f.RelPath, Message: err.Error()}
	}
	f.Image = img

	return f, nil
}

// relDir returns the '/'-separated descriptor directory of folder.
func (s DirSource) relDir(folder string) (string, error) {
	rel := filepath.Base(folder)
	if s.Root != "" {
		r, err := filepath.Rel(s.Root, folder)
		if err != nil {
			return "", fmt.Errorf("texture: relative path of %s: %w", folder, err)
		}
		rel = r
	}

	return path.Join(s.Prefix, filepath.ToSlash(rel)), nil
}
