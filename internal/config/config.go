// Package config loads steelqty settings from TOML files and STEELQTY_*
// environment variables.
package config

import (
	"github.com/cockroachdb/errors"

	"github.com/alexiusacademia/steelqty/internal/formula"
)

// Config is the full configuration tree.
type Config struct {
	Formula FormulaConfig `mapstructure:"formula"`
	Batch   BatchConfig   `mapstructure:"batch"`
	Log     LogConfig     `mapstructure:"log"`
}

// FormulaConfig controls how formulas are rendered.
type FormulaConfig struct {
	Accuracy          string  `mapstructure:"accuracy"`
	PiStyle           string  `mapstructure:"pi_style"`
	ExcludeTop        bool    `mapstructure:"exclude_top"`
	RoundDigits       int     `mapstructure:"round_digits"` // -1 leaves formulas unwrapped
	Density           float64 `mapstructure:"density"`      // kg/m³
	TruncateStiffener bool    `mapstructure:"truncate_stiffener"`
}

// BatchConfig controls CSV processing.
type BatchConfig struct {
	Offset        int    `mapstructure:"offset"`
	Output        string `mapstructure:"output"`
	FormulaPrefix bool   `mapstructure:"formula_prefix"`
	Overwrite     bool   `mapstructure:"overwrite"`
	CacheSize     int    `mapstructure:"cache_size"`
}

// LogConfig mirrors logger.Options.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Batch outputs.
const (
	OutputArea      = "area"
	OutputWeight    = "weight"
	OutputStiffener = "stiffener"
)

// AccuracyLevel parses Formula.Accuracy.
func (c *Config) AccuracyLevel() (formula.Accuracy, error) {
	return formula.ParseAccuracy(c.Formula.Accuracy)
}

// Style returns the rendering style. Call Validate first; an unknown π style
// falls back to PI().
func (c *Config) Style() formula.Style {
	pi, err := formula.ParsePiStyle(c.Formula.PiStyle)
	if err != nil {
		pi = formula.PiFunc
	}
	return formula.Style{Pi: pi, Density: c.Formula.Density}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.AccuracyLevel(); err != nil {
		return errors.Wrap(err, "formula.accuracy")
	}
	if _, err := formula.ParsePiStyle(c.Formula.PiStyle); err != nil {
		return errors.Wrap(err, "formula.pi_style")
	}
	if c.Formula.Density <= 0 {
		return errors.Newf("formula.density must be > 0, got %v", c.Formula.Density)
	}
	if c.Formula.RoundDigits < -1 {
		return errors.Newf("formula.round_digits must be >= -1, got %d", c.Formula.RoundDigits)
	}

	if c.Batch.Offset == 0 {
		return errors.New("batch.offset cannot be 0 (the output would overwrite the input column)")
	}
	switch c.Batch.Output {
	case OutputArea, OutputWeight, OutputStiffener:
	default:
		return errors.Newf("batch.output must be area, weight or stiffener, got %q", c.Batch.Output)
	}
	if c.Batch.CacheSize < 0 {
		return errors.Newf("batch.cache_size must be >= 0, got %d", c.Batch.CacheSize)
	}
	return nil
}
