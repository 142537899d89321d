package cli

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vmatgen/internal/batch"
	"vmatgen/internal/config"
	"vmatgen/internal/material"
	"vmatgen/internal/texture"
)

// ClassifyCmd returns the classify command
func ClassifyCmd() *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "classify <folder>",
		Short: "Show how a folder's textures would be bound, without writing",
		Long: `Show the role table, notices and descriptor that generate would produce
for one folder. Nothing is written or removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			flags.DryRun = true
			cfg, log, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			defer log.Close()

			res := batch.ProcessFolder(batch.Config{
				Source:  texture.DirSource{Prefix: cfg.Prefix, Root: filepath.Dir(filepath.Clean(folder))},
				Options: material.Options{SplitFormat: cfg.SplitFormat, DisableSplit: cfg.DisableSplit},
				Log:     log,
				DryRun:  true,
			}, folder)
			if !res.Success {
				return res.Err
			}

			printClassification(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.Prefix, "prefix", "", "First element of texture paths in descriptors (default \"materials\")")
	cmd.Flags().StringVar(&flags.SplitFormat, "split-format", "", "Format of split planes: png, tga, webp")
	cmd.Flags().BoolVar(&flags.DisableSplit, "no-split", false, "Classify MRA textures by suffix instead of splitting them")

	return cmd
}

func printClassification(cmd *cobra.Command, res batch.Result) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	found := color.New(color.FgGreen)
	missing := color.New(color.FgHiBlack)
	warn := color.New(color.FgYellow)

	bold.Fprintf(out, "%s\n", res.Folder)
	for _, role := range material.Roles {
		if path, ok := res.Textures[string(role)]; ok {
			fmt.Fprintf(out, "  %-28s %s\n", role, found.Sprint(path))
		} else {
			fmt.Fprintf(out, "  %-28s %s\n", role, missing.Sprint("-"))
		}
	}

	if len(res.Flags) > 0 {
		fmt.Fprintf(out, "\nFlags: %v\n", res.Flags)
	}
	if len(res.Derived) > 0 {
		fmt.Fprintf(out, "Split: %s -> %v\n", res.Removed, res.Derived)
	}
	if len(res.Notices) > 0 {
		fmt.Fprintln(out)
		for _, n := range res.Notices {
			warn.Fprintln(out, n.String())
		}
	}

	fmt.Fprintf(out, "\n%s\n", bold.Sprint(res.Descriptor))
	fmt.Fprint(out, string(res.Content))
}
