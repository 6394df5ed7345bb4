// Package config loads lumenc settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "LUMEN_CONFIG"

// Config holds the complete lumenc configuration
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Output      OutputConfig      `toml:"output" yaml:"output"`
	Log         LogConfig         `toml:"log" yaml:"log"`
}

// DiagnosticsConfig controls error rendering
type DiagnosticsConfig struct {
	Color      string `toml:"color" yaml:"color"` // auto, always or never
	FrameWidth int    `toml:"frame_width" yaml:"frame_width"`
}

// OutputConfig controls how parsed modules are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text or json
}

// LogConfig controls the diagnostic logger
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn or error
	Format string `toml:"format" yaml:"format"` // text or json
}

// Format is a configuration file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch detectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the configuration named by LUMEN_CONFIG or the first
// file found in the default locations. Without any file it returns Default().
// The returned path is empty when no file was used.
func LoadDefault() (*Config, string, error) {
	if path := os.Getenv(EnvVar); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}
	return Default(), "", nil
}

func defaultPaths() []string {
	paths := []string{"./lumen.toml", "./lumen.yaml", "./lumen.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lumen", "config.toml"))
	}
	return paths
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = "auto"
	}
	if c.Diagnostics.FrameWidth == 0 {
		c.Diagnostics.FrameWidth = 30
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed ...string) {
		for _, a := range allowed {
			if value == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s: %q is not one of %s", field, value, strings.Join(allowed, ", ")))
	}

	check("diagnostics.color", c.Diagnostics.Color, "auto", "always", "never")
	check("output.format", c.Output.Format, "text", "json")
	check("log.level", c.Log.Level, "debug", "info", "warn", "error")
	check("log.format", c.Log.Format, "text", "json")
	if c.Diagnostics.FrameWidth < 0 {
		errs = append(errs, fmt.Errorf("diagnostics.frame_width: must not be negative, got %d", c.Diagnostics.FrameWidth))
	}
	return errors.Join(errs...)
}
