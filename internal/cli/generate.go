package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vmatgen/internal/batch"
	"vmatgen/internal/config"
	"vmatgen/internal/material"
	"vmatgen/internal/texture"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "generate [root]",
		Short: "Write a .vmat for every subfolder of root",
		Long: `Write a .vmat for every immediate subfolder of root (default "materials").

Each folder is handled on its own: the first *mra* texture is split into
_Metalness/_Roughness/_AO planes and removed, the other textures are bound by
suffix, and <folder>/<folder>.vmat is rewritten. Re-running on an unchanged
folder produces the same file.

Examples:
  vmatgen generate
  vmatgen generate assets/materials --prefix materials --workers 4
  vmatgen generate --dry-run --report report.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.Root = args[0]
			}
			cfg, log, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			defer log.Close()

			folders, err := batch.Folders(cfg.Root)
			if err != nil {
				return err
			}
			if len(folders) == 0 {
				log.Info("No material folders in %s", cfg.Root)
				return nil
			}

			mode := ""
			if cfg.DryRun {
				mode = " (dry run)"
			}
			log.Info("Folders: %d, Workers: %d, Root: %s%s", len(folders), cfg.Workers, cfg.Root, mode)

			start := time.Now()
			results := batch.Run(cmd.Context(), batch.Config{
				Source:        texture.DirSource{Prefix: cfg.Prefix, Root: cfg.Root},
				Options:       material.Options{SplitFormat: cfg.SplitFormat, DisableSplit: cfg.DisableSplit},
				Log:           log,
				Workers:       cfg.Workers,
				KeepPacked:    cfg.KeepPacked,
				ConvertLegacy: cfg.ConvertLegacy,
				DryRun:        cfg.DryRun,
			}, folders)

			var failed []batch.Result
			for _, r := range results {
				if !r.Success {
					failed = append(failed, r)
					continue
				}
				if cfg.DryRun {
					log.Debug("%s:\n%s", r.Descriptor, r.Content)
				} else {
					log.Debug("Generated: %s", r.Descriptor)
				}
			}
			log.Success("Generated %d/%d in %.1fs", len(results)-len(failed), len(results), time.Since(start).Seconds())

			limit := 20
			if len(failed) < limit {
				limit = len(failed)
			}
			for _, r := range failed[:limit] {
				log.Error("%s: %s", r.Folder, r.Error)
			}

			if cfg.Report != "" {
				if err := batch.WriteReport(cfg.Report, results); err != nil {
					log.Warn("report: %v", err)
				} else {
					log.Info("Report: %s", cfg.Report)
				}
			}

			if len(failed) > 0 {
				return fmt.Errorf("%d folder(s) failed", len(failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Prefix, "prefix", "", "First element of texture paths in descriptors (default \"materials\")")
	cmd.Flags().IntVar(&flags.Workers, "workers", 0, "Folders processed in parallel (default: NumCPU)")
	cmd.Flags().StringVar(&flags.SplitFormat, "split-format", "", "Format of split planes: png, tga, webp (default: source format)")
	cmd.Flags().BoolVar(&flags.KeepPacked, "keep-packed", false, "Keep the packed MRA texture after splitting")
	cmd.Flags().BoolVar(&flags.DisableSplit, "no-split", false, "Classify MRA textures by suffix instead of splitting them")
	cmd.Flags().BoolVar(&flags.ConvertLegacy, "convert-legacy", false, "Unpack OZJ/OZT containers before scanning")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Compute descriptors without writing anything")
	cmd.Flags().StringVar(&flags.Report, "report", "", "Write a JSON report of the run")

	return cmd
}
