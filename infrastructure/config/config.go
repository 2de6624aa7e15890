// Package config loads application configuration from layered sources:
// embedded defaults, a YAML file, environment variables and flag overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"photoview/resources"
)

// FileName is the configuration file name inside the user config directory.
const FileName = "config.yaml"

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Window   WindowConfig   `yaml:"window"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig configures the main window.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// ViewerConfig configures the image viewer popup.
type ViewerConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Dir       string `yaml:"dir"`
	AddSource bool   `yaml:"add_source"`
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set.
	// When empty, DefaultPath is used if the file is present.
	Path string

	// LookupEnv resolves environment variables. Defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)

	// Overrides is applied last, typically from command-line flags.
	Overrides *Config
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DefaultPath returns the default config file path.
// Tries os.UserConfigDir, falls back to the working directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(dir, "photoview", FileName)
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	cfg, err := parse(resources.DefaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded defaults: %w", err)
	}
	return cfg, nil
}

// Load resolves the configuration from all layers and validates it.
func Load(opts *LoadOptions) (*Config, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	path := opts.Path
	required := path != ""
	if !required {
		path = DefaultPath()
	}

	file, err := LoadFile(path)
	switch {
	case err == nil:
		cfg.Merge(file)
	case !required && errors.Is(err, fs.ErrNotExist):
		// No user config, defaults apply
	default:
		return nil, err
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	if opts.Overrides != nil {
		cfg.Merge(opts.Overrides)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFile reads a single YAML config file without defaults or validation.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document leaves every field at its zero value
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

// Merge applies values from overlay that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay == nil {
		return
	}
	c.Database.Merge(&overlay.Database)

	if overlay.Window.Title != "" {
		c.Window.Title = overlay.Window.Title
	}
	if overlay.Window.Width != 0 {
		c.Window.Width = overlay.Window.Width
	}
	if overlay.Window.Height != 0 {
		c.Window.Height = overlay.Window.Height
	}

	if overlay.Viewer.Title != "" {
		c.Viewer.Title = overlay.Viewer.Title
	}
	if overlay.Viewer.Width != 0 {
		c.Viewer.Width = overlay.Viewer.Width
	}
	if overlay.Viewer.Height != 0 {
		c.Viewer.Height = overlay.Viewer.Height
	}

	if overlay.Logging.Level != "" {
		c.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Dir != "" {
		c.Logging.Dir = overlay.Logging.Dir
	}
	if overlay.Logging.AddSource {
		c.Logging.AddSource = true
	}
}

// ApplyEnv overrides values from PHOTOVIEW_* environment variables.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	if err := c.Database.applyEnv(lookup); err != nil {
		return err
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("viewer: size must be positive, got %vx%v", c.Viewer.Width, c.Viewer.Height)
	}
	return nil
}
