package screenlens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/screenlens/layout"
	"github.com/tsawler/screenlens/patterns"
	"github.com/tsawler/screenlens/relations"
)

// Config aggregates the configuration of every analysis stage.
type Config struct {
	Layout    layout.Config    `yaml:"layout"`
	Patterns  patterns.Config  `yaml:"patterns"`
	Relations relations.Config `yaml:"relations"`
}

// DefaultConfig returns sensible default configuration for all stages.
func DefaultConfig() Config {
	return Config{
		Layout:    layout.DefaultConfig(),
		Patterns:  patterns.DefaultConfig(),
		Relations: relations.DefaultConfig(),
	}
}

// ParseConfig parses YAML configuration on top of the defaults, so a partial
// document only overrides the keys it names.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks that every threshold and tolerance is usable.
func (c Config) Validate() error {
	if c.Layout.Grid.GridTolerance < 0 {
		return fmt.Errorf("layout: grid tolerance must not be negative, got %v", c.Layout.Grid.GridTolerance)
	}
	if c.Layout.Alignment.Tolerance < 0 {
		return fmt.Errorf("layout: alignment tolerance must not be negative, got %v", c.Layout.Alignment.Tolerance)
	}
	if c.Layout.Spacing.BucketSize <= 0 {
		return fmt.Errorf("layout: spacing bucket size must be positive, got %v", c.Layout.Spacing.BucketSize)
	}
	if c.Patterns.MinConfidence < 0 || c.Patterns.MinConfidence > 1 {
		return fmt.Errorf("patterns: min confidence must be in [0,1], got %v", c.Patterns.MinConfidence)
	}
	if c.Relations.FunctionalThreshold < 0 || c.Relations.FunctionalThreshold > 1 {
		return fmt.Errorf("relations: functional threshold must be in [0,1], got %v", c.Relations.FunctionalThreshold)
	}
	if c.Relations.ContainmentPadding < 0 {
		return fmt.Errorf("relations: containment padding must not be negative, got %v", c.Relations.ContainmentPadding)
	}
	if c.Relations.StrongLimit < 0 {
		return fmt.Errorf("relations: strong limit must not be negative, got %v", c.Relations.StrongLimit)
	}
	return nil
}
