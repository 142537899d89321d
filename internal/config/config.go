package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Defaults applied by Resolve.
const (
	DefaultRoot   = "materials"
	DefaultPrefix = "materials"
)

// Config holds all configurable paths and generation settings.
type Config struct {
	// Paths
	Root    string `json:"root"`     // directory whose subfolders are materials
	Prefix  string `json:"prefix"`   // first element of descriptor texture paths
	Report  string `json:"report"`   // optional JSON run report
	LogFile string `json:"log_file"` // optional log file (appended)

	// Generation settings
	Workers       int    `json:"workers"`
	SplitFormat   string `json:"split_format"` // png, tga, webp; empty keeps the source format
	KeepPacked    bool   `json:"keep_packed"`
	DisableSplit  bool   `json:"disable_split"`
	ConvertLegacy bool   `json:"convert_legacy"`
	DryRun        bool   `json:"dry_run"`

	// Output
	Color   string `json:"color"`
	Verbose bool   `json:"verbose"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadDotEnv loads variables from an env file into the process environment.
// A missing file is not an error. Variables already set are kept.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields with VMATGEN_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("VMATGEN_ROOT"); v != "" {
		c.Root = v
	}
	if v := os.Getenv("VMATGEN_PREFIX"); v != "" {
		c.Prefix = v
	}
	if v := os.Getenv("VMATGEN_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("VMATGEN_SPLIT_FORMAT"); v != "" {
		c.SplitFormat = v
	}
	if v := os.Getenv("VMATGEN_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: VMATGEN_WORKERS: %w", err)
		}
		c.Workers = n
	}
	return nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Root          string
	Prefix        string
	Report        string
	LogFile       string
	Workers       int
	SplitFormat   string
	KeepPacked    bool
	DisableSplit  bool
	ConvertLegacy bool
	DryRun        bool
	Color         string
	Verbose       bool
}

// Resolve applies flags and fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Root != "" {
		c.Root = flags.Root
	}
	if flags.Prefix != "" {
		c.Prefix = flags.Prefix
	}
	if flags.Report != "" {
		c.Report = flags.Report
	}
	if flags.LogFile != "" {
		c.LogFile = flags.LogFile
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.SplitFormat != "" {
		c.SplitFormat = flags.SplitFormat
	}
	if flags.Color != "" {
		c.Color = flags.Color
	}
	c.KeepPacked = c.KeepPacked || flags.KeepPacked
	c.DisableSplit = c.DisableSplit || flags.DisableSplit
	c.ConvertLegacy = c.ConvertLegacy || flags.ConvertLegacy
	c.DryRun = c.DryRun || flags.DryRun
	c.Verbose = c.Verbose || flags.Verbose

	// Defaults
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	c.SplitFormat = strings.TrimPrefix(strings.ToLower(c.SplitFormat), ".")
}

// Validate reports settings Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.SplitFormat {
	case "", "png", "tga", "webp":
	default:
		return fmt.Errorf("config: unsupported split_format %q (png, tga, webp)", c.SplitFormat)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: unsupported color mode %q (auto, always, never)", c.Color)
	}
	return nil
}
