// Package config loads and validates the radixdemo configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/radixsort/radix"
	"github.com/katalvlaran/radixsort/sample"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the demo driver configuration.
type Config struct {
	// Values to shuffle and sort. Empty means sample.Reference().
	Values []int `yaml:"values"`

	// Seed for the shuffle; 0 selects sample.DefaultSeed.
	Seed int64 `yaml:"seed"`

	// Base is the sort radix, in [2, radix.MaxBase]. 0 (or an omitted
	// field) means DefaultBase.
	Base int `yaml:"base"`

	// Negatives is "reject" or "split".
	Negatives string `yaml:"negatives"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Trace logs every sort pass at debug level.
	Trace bool `yaml:"trace"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

// Load reads the YAML file at path, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Policy maps Negatives onto a radix.NegativePolicy.
func (c *Config) Policy() (radix.NegativePolicy, error) {
	switch c.Negatives {
	case radix.RejectNegatives.String():
		return radix.RejectNegatives, nil
	case radix.SignSplit.String():
		return radix.SignSplit, nil
	default:
		return 0, fmt.Errorf("%w: negatives must be %q or %q, got %q",
			ErrInvalidConfig, radix.RejectNegatives, radix.SignSplit, c.Negatives)
	}
}

// Options converts the sort settings into radix options.
func (c *Config) Options() ([]radix.Option, error) {
	p, err := c.Policy()
	if err != nil {
		return nil, err
	}

	return []radix.Option{radix.WithBase(c.Base), radix.WithNegatives(p)}, nil
}

// Validate checks every field that has a restricted domain.
func (c *Config) Validate() error {
	if c.Base < 2 || c.Base > radix.MaxBase {
		return fmt.Errorf("%w: base must be in [2, %d], got %d", ErrInvalidConfig, radix.MaxBase, c.Base)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Values) == 0 {
		c.Values = sample.Reference()
	}
	if c.Base == 0 {
		c.Base = DefaultBase
	}
	if c.Negatives == "" {
		c.Negatives = DefaultNegatives
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
