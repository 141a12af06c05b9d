package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfidence is the confidence level reported when none is configured.
const defaultConfidence = 0.95

// Config is the optional YAML file passed with --config. Flags given on the
// command line take precedence over its values.
//
// Example:
//
//	seed: 42
//	format: json
//	verbose: false
//	confidence: 0.99
type Config struct {
	Seed       int64   `yaml:"seed"`
	Format     string  `yaml:"format"`
	Verbose    bool    `yaml:"verbose"`
	Confidence float64 `yaml:"confidence"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{
		Seed:       0,
		Format:     FormatText,
		Verbose:    false,
		Confidence: defaultConfidence,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the format and confidence level.
func (c Config) Validate() error {
	if !isValidFormat(c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	if !(c.Confidence > 0 && c.Confidence < 1) {
		return fmt.Errorf("invalid confidence %g: must be in (0,1)", c.Confidence)
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
