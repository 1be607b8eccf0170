package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"addnoise/internal/imageio"
	"addnoise/internal/logging"
	"addnoise/pkg/fileops"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "addnoise" // application name used for config directory

// ConfigPathEnv overrides the config file location when set.
const ConfigPathEnv = "ADDNOISE_CONFIG_PATH"

const (
	DefaultTag     = "_noisy"
	CurrentVersion = "1.0"
)

// ViewerConfig bounds the image window in terminal cells. Zero means use the
// whole terminal.
type ViewerConfig struct {
	MaxCols int `yaml:"max_cols"`
	MaxRows int `yaml:"max_rows"`
}

// Config holds user configuration for addnoise.
type Config struct {
	// OutputFolder is where tagged images are written. Empty means
	// <cwd>/output, decided when the output name is computed.
	OutputFolder string            `yaml:"output_folder,omitempty"`
	Tag          string            `yaml:"tag"`
	ColorMode    imageio.ColorMode `yaml:"color_mode"`
	JPEGQuality  int               `yaml:"jpeg_quality"`
	Viewer       ViewerConfig      `yaml:"viewer"`
	Version      string            `yaml:"version"` // Track config version
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Tag:         DefaultTag,
		ColorMode:   imageio.Color,
		JPEGQuality: imageio.DefaultJPEGQuality,
		Version:     CurrentVersion,
	}
}

// ConfigPath returns the config file path for the current platform, honouring
// ADDNOISE_CONFIG_PATH.
func ConfigPath() string {
	if override := os.Getenv(ConfigPathEnv); override != "" {
		return fileops.ExpandPath(override)
	}

	configPath := filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
	logging.Debug("Determined config path", "path", configPath)
	return configPath
}

// Load reads the config from the standard location. A missing file yields
// the defaults.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path on top of the defaults. A missing file
// yields the defaults; any other failure is returned.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("No config file, using defaults", "path", path)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	logging.Debug("Decoding config file", "path", path)
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		logging.Warn("Config file is empty, using defaults", "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	if err := fileops.ValidateFilenameFragment(c.Tag); err != nil {
		return fmt.Errorf("invalid tag: %w", err)
	}
	if c.ColorMode != imageio.Color && c.ColorMode != imageio.Grayscale {
		return fmt.Errorf("invalid color_mode: %s", c.ColorMode)
	}
	if c.Viewer.MaxCols < 0 || c.Viewer.MaxRows < 0 {
		return fmt.Errorf("viewer size cannot be negative")
	}
	return nil
}

// ResolvedOutputFolder returns OutputFolder with "~/" expanded.
func (c *Config) ResolvedOutputFolder() string {
	return fileops.ExpandPath(c.OutputFolder)
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file with restrictive permissions (600) for security
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	logging.Info("Configuration saved", "path", path)
	return nil
}
