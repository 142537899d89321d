package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"vmatgen/internal/config"
	"vmatgen/internal/organize"
)

// OrganizeCmd returns the organize command
func OrganizeCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "organize <folder>",
		Short: "Move loose files into subfolders named after their prefix",
		Long: `Move every file directly inside folder into a subfolder named after the
first two "_"-separated tokens of its name, so that a flat texture dump becomes
one folder per material:

  rock_wall_color.png  ->  rock_wall/rock_wall_color.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			defer log.Close()

			moves, err := organize.ByPrefix(args[0], cfg.DryRun)
			for _, m := range moves {
				rel, _ := filepath.Rel(args[0], m.To)
				if cfg.DryRun {
					log.Info("would move %s -> %s", filepath.Base(m.From), rel)
				} else {
					log.Debug("moved %s -> %s", filepath.Base(m.From), rel)
				}
			}
			if err != nil {
				return err
			}

			if cfg.DryRun {
				log.Info("%d file(s) would be moved", len(moves))
			} else {
				log.Success("Moved %d file(s)", len(moves))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Only report the moves")

	return cmd
}
