package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"vmatgen/internal/config"
	"vmatgen/internal/logging"
)

// NewRootCmd returns the vmatgen command tree.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "vmatgen",
		Short:   "Generate .vmat materials from texture folders",
		Version: version,
		Long: `vmatgen scans every subfolder of a materials root, binds the textures it
finds to material roles by name suffix, splits packed MRA textures into
metalness/roughness/AO planes, and writes <folder>/<folder>.vmat.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().String("env-file", ".env", "Env file with VMATGEN_* variables")
	rootCmd.PersistentFlags().String("log-file", "", "Append log lines to this file")
	rootCmd.PersistentFlags().String("color", "", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log informational notices")

	rootCmd.AddCommand(GenerateCmd())
	rootCmd.AddCommand(ClassifyCmd())
	rootCmd.AddCommand(SplitCmd())
	rootCmd.AddCommand(OrganizeCmd())
	rootCmd.AddCommand(ConvertCmd())

	return rootCmd
}

// loadConfig layers config file, env file, environment and flags, then opens the logger.
func loadConfig(cmd *cobra.Command, flags config.Flags) (config.Config, *logging.Logger, error) {
	var cfg config.Config

	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := config.LoadDotEnv(envFile); err != nil {
			return cfg, nil, err
		}
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, nil, err
	}

	flags.LogFile, _ = cmd.Flags().GetString("log-file")
	flags.Color, _ = cmd.Flags().GetString("color")
	flags.Verbose, _ = cmd.Flags().GetBool("verbose")

	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
