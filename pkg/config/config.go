package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the classifier configuration
type Config struct {
	// Corpus input settings
	Corpus CorpusConfig `yaml:"corpus"`

	// Train/test split settings
	Split SplitConfig `yaml:"split"`

	// Model training settings
	Learning LearningConfig `yaml:"learning"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// CorpusConfig contains corpus input settings
type CorpusConfig struct {
	// Path to the tab-separated (label, text) corpus file
	Path string `yaml:"path"`
}

// SplitConfig contains train/test partitioning settings
type SplitConfig struct {
	// Seed for the deterministic shuffle before the positional split
	Seed int64 `yaml:"seed"`

	// Share of the corpus used for training, the rest is held out
	TrainRatio float64 `yaml:"train_ratio"`
}

// LearningConfig contains model training settings
type LearningConfig struct {
	// Add-alpha smoothing constant, must be positive
	SmoothingAlpha float64 `yaml:"smoothing_alpha"`

	// Keep token case instead of lower-casing
	CaseSensitive bool `yaml:"case_sensitive"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Path: "SMSSpamCollection",
		},
		Split: SplitConfig{
			Seed:       1,
			TrainRatio: 0.8,
		},
		Learning: LearningConfig{
			SmoothingAlpha: 1.0,
			CaseSensitive:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a file, or returns the default
// configuration when the path is empty
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file
func (c *Config) SaveConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for logical errors
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus.path must not be empty")
	}
	if c.Split.TrainRatio <= 0 || c.Split.TrainRatio >= 1 {
		return fmt.Errorf("split.train_ratio must be between 0 and 1 exclusive, got %g", c.Split.TrainRatio)
	}
	if c.Learning.SmoothingAlpha <= 0 {
		return fmt.Errorf("learning.smoothing_alpha must be positive, got %g", c.Learning.SmoothingAlpha)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}
