package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"vmatgen/internal/batch"
	"vmatgen/internal/config"
	"vmatgen/internal/texture"
)

// ConvertCmd returns the convert command
func ConvertCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "convert [root]",
		Short: "Unpack OZJ/OZT texture containers in every material folder",
		Long: `Write the JPEG or TGA payload of every .ozj/.ozt file in each subfolder of
root next to it. Files whose target already exists are skipped.`,
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

			var converted, skipped, failed int
			for _, folder := range folders {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				conv, err := texture.ConvertLegacy(folder)
				if err != nil {
					log.Warn("%s: %v", filepath.Base(folder), err)
					failed++
				}
				for _, c := range conv {
					if c.Skipped {
						skipped++
						continue
					}
					converted++
					log.Debug("%s -> %s", c.Source, filepath.Base(c.Target))
				}
			}

			log.Success("Converted %d, skipped %d, failed folders %d", converted, skipped, failed)
			return nil
		},
	}

	return cmd
}
