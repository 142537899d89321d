package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteReport writes the per-folder results as indented JSON.
func WriteReport(path string, results []Result) error {
	if results == nil {
		results = []Result{}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write report: %w", err)
	}
	return nil
}
