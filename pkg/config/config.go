// Package config provides configuration loading and management for ndview.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Playback parameters for stepping along the scroll dimension
	Playback struct {
		// FPS is the frame rate used when timing exported sequences
		FPS float64 `yaml:"fps"`

		// Loop controls whether playback wraps around at the end of
		// the scroll dimension instead of stopping
		Loop bool `yaml:"loop"`
	} `yaml:"playback"`

	// Display parameters
	Display struct {
		// Projection selects the real view of complex data:
		// magnitude, phase, real or imag
		Projection string `yaml:"projection"`

		// AutoLimits enables per-frame quantile color limits
		AutoLimits bool `yaml:"autoLimits"`

		// LowQuantile is the lower bound of the value window
		LowQuantile float64 `yaml:"lowQuantile"`

		// HighQuantile is the upper bound of the value window
		HighQuantile float64 `yaml:"highQuantile"`

		// Min and Max are the manual color limits used when
		// AutoLimits is disabled
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"display"`

	// Export parameters
	Export struct {
		// Format is the frame file format: jpg or png
		Format string `yaml:"format"`

		// Quality is the JPEG encoding quality (1-100)
		Quality int `yaml:"quality"`

		// OutputDir is the directory frames are written to
		OutputDir string `yaml:"outputDir"`
	} `yaml:"export"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default playback parameters
	cfg.Playback.FPS = 10.0
	cfg.Playback.Loop = true

	// Set default display parameters
	cfg.Display.Projection = "magnitude"
	cfg.Display.AutoLimits = true
	cfg.Display.LowQuantile = 0.01
	cfg.Display.HighQuantile = 0.99
	cfg.Display.Min = 0.0
	cfg.Display.Max = 1.0

	// Set default export parameters
	cfg.Export.Format = "png"
	cfg.Export.Quality = 90
	cfg.Export.OutputDir = "frames"

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
