package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vmatgen/internal/config"
	"vmatgen/internal/material"
	"vmatgen/internal/texture"
)

// SplitCmd returns the split command
func SplitCmd() *cobra.Command {
	var flags config.Flags
	var remove bool

	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split one packed texture into metalness, roughness and AO planes",
		Long: `Split the red, green and blue channels of one texture into
<base>_Metalness, <base>_Roughness and <base>_AO next to it. The file does not
need the "mra" marker in its name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			defer log.Close()

			file := args[0]
			img, err := texture.LoadTexture(file)
			if err != nil {
				return err
			}

			f := material.NewAssetFile("", filepath.Base(file))
			f.Image = img
			if conf, _, err := texture.LoadConfig(file); err == nil {
				f.Channels = material.ChannelCount(conf.ColorModel)
			}

			s, err := material.SplitFile(f, cfg.SplitFormat)
			if err != nil {
				return err
			}

			dir := filepath.Dir(file)
			for _, p := range s.Planes {
				if err := texture.SaveImage(filepath.Join(dir, p.Name), p.Image); err != nil {
					return err
				}
				log.Success("%s: %s", p.Role, filepath.Join(dir, p.Name))
			}

			if remove {
				return os.Remove(file)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.SplitFormat, "split-format", "", "Format of split planes: png, tga, webp")
	cmd.Flags().BoolVar(&remove, "remove", false, "Remove the source texture after splitting")

	return cmd
}
