// Package config loads the richdoc command configuration from flags,
// RICHDOC_* environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. RICHDOC_THEME.
const EnvPrefix = "RICHDOC"

const (
	DefaultTheme    = "default"
	DefaultLogLevel = "warn"
)

// Config is the resolved command configuration.
type Config struct {
	Theme          string `mapstructure:"theme"`
	Width          int    `mapstructure:"width"`
	OSC8           string `mapstructure:"osc8"`
	Boring         bool   `mapstructure:"boring"`
	Output         string `mapstructure:"output"`
	Syntax         bool   `mapstructure:"syntax"`
	IDs            bool   `mapstructure:"ids"`
	DescendUnknown bool   `mapstructure:"descend-unknown"`
	CloseLists     bool   `mapstructure:"close-lists"`
	GFM            bool   `mapstructure:"gfm"`
	FrontMatter    bool   `mapstructure:"front-matter"`
	NFC            bool   `mapstructure:"nfc"`
	LogLevel       string `mapstructure:"log-level"`
}

// Flags returns a flag set with every configurable flag registered.
func Flags(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "Config file (default $XDG_CONFIG_HOME/richdoc/config.*)")
	flags.StringP("theme", "t", DefaultTheme, "Theme name")
	flags.Bool("list-themes", false, "List available themes")
	flags.IntP("width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringP("osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.BoolP("boring", "b", false, "Generate non-ANSI output")
	flags.StringP("output", "o", "", "Output file instead of stdout")
	flags.Bool("syntax", false, "Dump the syntax tree instead of the document")
	flags.Bool("ids", false, "Print the owning paragraph ID of every span")
	flags.Bool("descend-unknown", false, "Import the content of block quotes, tables and other unhandled blocks")
	flags.Bool("close-lists", false, "Start a new paragraph for content that follows a list")
	flags.Bool("gfm", true, "Enable GitHub Flavored Markdown extensions")
	flags.Bool("front-matter", true, "Strip a leading front-matter block")
	flags.Bool("nfc", false, "Normalize input to Unicode NFC")
	flags.String("log-level", DefaultLogLevel, "Log level: trace|debug|info|warn|error")
	flags.SetInterspersed(true)
	return flags
}

// Load resolves the configuration. Explicitly set flags win over the
// environment, which wins over the config file, which wins over flag
// defaults. An empty path looks for config.* in the user config
// directory and ignores a missing file.
func Load(flags *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("config: bind flags: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(dir, "richdoc"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
