// Package checkcmd implements the namedcheck command: it runs capcheck over a
// set of package patterns and reports violations in the requested format.
package checkcmd

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Color modes of the text format.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds namedcheck configuration. Flags override the environment.
type Config struct {
	Dir      string `env:"NAMEDCHECK_DIR"`
	Tests    bool   `env:"NAMEDCHECK_TESTS"`
	Format   string `env:"NAMEDCHECK_FORMAT" envDefault:"text"`
	Color    string `env:"NAMEDCHECK_COLOR" envDefault:"auto"`
	Patterns []string
}

// ParseConfig parses the environment and then the given flags into a Config.
// Positional arguments are package patterns.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "directory in which patterns are resolved (default: NAMEDCHECK_DIR or the current directory)")
	fs.BoolVar(&cfg.Tests, "tests", cfg.Tests, "also check test files")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text, json or yaml")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "colorize text output: auto, always or never")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Patterns = fs.Args()

	switch cfg.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return Config{}, fmt.Errorf("unknown color mode %q", cfg.Color)
	}
	return cfg, nil
}
