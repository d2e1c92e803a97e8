// Package config loads rendering options from defaults, an optional YAML file,
// LEARNING_CURVES_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix (LEARNING_CURVES_WIDTH, ...).
const EnvPrefix = "LEARNING_CURVES"

// DefaultTitle is used when no title argument or option is given.
const DefaultTitle = "Learning Curves"

// Output format names.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatHTML = "html"
)

// Config holds every tunable of a rendering run.
type Config struct {
	Title           string     `mapstructure:"title"`
	Width           int        `mapstructure:"width"`
	Height          int        `mapstructure:"height"`
	Formats         []string   `mapstructure:"formats"`
	Strict          bool       `mapstructure:"strict"`
	RequiredColumns []string   `mapstructure:"required_columns"`
	LogLevel        string     `mapstructure:"log_level"`
	Hints           bool       `mapstructure:"hints"`
	Demo            DemoConfig `mapstructure:"demo"`
}

// DemoConfig configures the synthetic demo renderer.
type DemoConfig struct {
	Epochs int `mapstructure:"epochs"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() *Config {
	return &Config{
		Title:           DefaultTitle,
		Width:           1000,
		Height:          600,
		Formats:         []string{FormatPNG, FormatSVG, FormatHTML},
		RequiredColumns: []string{"epoch", "loss", "accuracy"},
		LogLevel:        "info",
		Hints:           true,
		Demo:            DemoConfig{Epochs: 100},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("title", d.Title)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("formats", d.Formats)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("required_columns", d.RequiredColumns)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("hints", d.Hints)
	v.SetDefault("demo.epochs", d.Demo.Epochs)
}

// Load builds a Config. path may be empty; flags may be nil. Only flags listed
// in flagKeys are bound, and only when set explicitly do they win over the
// file and environment.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key, known := flagKeys[f.Name]
			if !known || bindErr != nil {
				return
			}
			bindErr = v.BindPFlag(key, f)
		})
		if bindErr != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Formats = splitList(cfg.Formats)
	cfg.RequiredColumns = splitList(cfg.RequiredColumns)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps command-line flag names to the config keys they override.
var flagKeys = map[string]string{
	"title":            "title",
	"width":            "width",
	"height":           "height",
	"formats":          "formats",
	"strict":           "strict",
	"required-columns": "required_columns",
	"log-level":        "log_level",
	"epochs":           "demo.epochs",
}

// splitList accepts both YAML lists and comma separated env values ("png,svg").
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate rejects sizes and formats the renderer cannot honour.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", c.Width, c.Height)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("no output formats configured")
	}
	for _, f := range c.Formats {
		switch f {
		case FormatPNG, FormatSVG, FormatHTML:
		default:
			return fmt.Errorf("invalid format %q (must be png, svg or html)", f)
		}
	}
	if c.Demo.Epochs < 0 {
		return fmt.Errorf("invalid demo epochs %d", c.Demo.Epochs)
	}
	return nil
}

// Wants reports whether format is enabled.
func (c *Config) Wants(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}
