// Package config loads tool configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docsift/docsift/classify"
)

// Config holds the settings of the docsift command-line tool.
type Config struct {
	// SampleSize is the number of pages sampled for classification.
	SampleSize int `yaml:"sample_size"`

	// Strategy selects the counting strategy for full-document
	// statistics: "stream" or "resources".
	Strategy string `yaml:"strategy"`

	// Thresholds tunes the classifier's decision rules.
	Thresholds classify.Thresholds `yaml:"thresholds"`

	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig controls the local report cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`

	// Path overrides the default per-user cache location.
	Path string `yaml:"path"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		SampleSize: 5,
		Strategy:   "stream",
		Thresholds: classify.DefaultThresholds(),
		Cache:      CacheConfig{Enabled: false},
	}
}

// Load reads the configuration file at path, filling unset fields with
// defaults. A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be at least 1, got %d", c.SampleSize)
	}
	switch c.Strategy {
	case "stream", "resources":
	default:
		return fmt.Errorf("unknown strategy %q (want \"stream\" or \"resources\")", c.Strategy)
	}
	if c.Thresholds.MinTextItems < 0 || c.Thresholds.MaxAvgImages <= 0 || c.Thresholds.LargeImageDim < 1 {
		return errors.New("thresholds out of range")
	}
	return nil
}
