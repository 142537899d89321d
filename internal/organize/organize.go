// Package organize groups loose texture files into per-material folders.
package organize

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDestinationExists indicates a move that would overwrite a file.
var ErrDestinationExists = errors.New("organize: destination exists")

// Move is one file relocation.
type Move struct {
	From string
	To   string
}

// Prefix returns the folder name a file is grouped under: the first two
// '_'-separated tokens of its stem ("T_Wood_Floor_albedo.png" -> "T_Wood").
func Prefix(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.SplitN(stem, "_", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, "_")
}

// ByPrefix moves every regular file directly inside folder into a subfolder
// named by Prefix. With dryRun set the moves are only computed.
// Moves are applied in name order; the first failure stops the run.
func ByPrefix(folder string, dryRun bool) ([]Move, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("organize: list %s: %w", folder, err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	moves := make([]Move, 0, len(names))
	for _, name := range names {
		sub := Prefix(name)
		if sub == "" {
			continue
		}
		moves = append(moves, Move{
			From: filepath.Join(folder, name),
			To:   filepath.Join(folder, sub, name),
		})
	}
	if dryRun {
		return moves, nil
	}

	for i, m := range moves {
		if err := apply(m); err != nil {
			return moves[:i], err
		}
	}
	return moves, nil
}

// apply performs one move without overwriting.
func apply(m Move) error {
	if err := os.MkdirAll(filepath.Dir(m.To), 0755); err != nil {
		return fmt.Errorf("organize: %w", err)
	}
	if _, err := os.Stat(m.To); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, m.To)
	}
	if err := os.Rename(m.From, m.To); err != nil {
		return fmt.Errorf("organize: %w", err)
	}
	return nil
}
