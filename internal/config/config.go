// Package config holds the configuration of the cssnap command.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/npillmayer/cssnap"
	"github.com/npillmayer/cssnap/dom/style/selector"
)

//go:embed default.yaml
var defaultConfig []byte

type (
	LoggingConfig struct {
		Level string `yaml:"level"`
	}

	Config struct {
		ClassPrefix  string        `yaml:"class_prefix"`
		ClassPattern string        `yaml:"class_pattern"`
		Probe        string        `yaml:"probe"`
		Indent       int           `yaml:"indent"`
		CSS          []string      `yaml:"css"`
		Logging      LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// Only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := unmarshalConfig(defaultConfig, &Config{})
	if err != nil {
		panic(fmt.Sprintf("embedded default configuration is broken: %v", err))
	}
	return cfg
}

// LoadConfiguration reads the configuration from the file at the given path
// and superimposes its values on top of the defaults. An empty path results
// in the default configuration.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	return Parse(data, cfg)
}

// Parse superimposes YAML data on cfg and validates the result.
func Parse(data []byte, cfg *Config) (*Config, error) {
	if len(bytes.TrimSpace(data)) > 0 {
		if _, err := unmarshalConfig(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values which yaml decoding cannot check by itself.
func (c *Config) Validate() error {
	switch c.Probe {
	case "keyspace", "pairs":
	default:
		return fmt.Errorf("probe must be one of keyspace, pairs; is %q", c.Probe)
	}
	switch c.Logging.Level {
	case "none", "normal", "debug":
	default:
		return fmt.Errorf("logging level must be one of none, normal, debug; is %q", c.Logging.Level)
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, is %d", c.Indent)
	}
	if c.ClassPattern == "" && c.ClassPrefix == "" {
		return fmt.Errorf("either class_prefix or class_pattern is required")
	}
	if c.ClassPattern != "" {
		if _, err := selector.Pattern(c.ClassPattern); err != nil {
			return fmt.Errorf("invalid class_pattern: %w", err)
		}
	}
	return nil
}

// Matcher builds the predicate for generated class names.
func (c *Config) Matcher() (selector.Matcher, error) {
	if c.ClassPattern != "" {
		return selector.Pattern(c.ClassPattern)
	}
	return selector.PrefixMatcher(c.ClassPrefix), nil
}

// CompositeProbe returns the strategy for finding composite rules.
func (c *Config) CompositeProbe() cssnap.CompositeProbe {
	if c.Probe == "pairs" {
		return cssnap.ProbePairs
	}
	return cssnap.ProbeKeySpace
}

// Options translates the configuration into serializer options.
func (c *Config) Options() ([]cssnap.Option, error) {
	m, err := c.Matcher()
	if err != nil {
		return nil, err
	}
	return []cssnap.Option{
		cssnap.WithMatcher(m),
		cssnap.WithProbe(c.CompositeProbe()),
		cssnap.WithIndent(c.Indent),
	}, nil
}
