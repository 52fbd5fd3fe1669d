package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. STEELQTY_FORMULA_ACCURACY.
const EnvPrefix = "STEELQTY"

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("formula.accuracy", "roughly")
	v.SetDefault("formula.pi_style", "func")
	v.SetDefault("formula.exclude_top", false)
	v.SetDefault("formula.round_digits", -1)
	v.SetDefault("formula.density", 7850.0)
	v.SetDefault("formula.truncate_stiffener", true)

	v.SetDefault("batch.offset", 1)
	v.SetDefault("batch.output", OutputArea)
	v.SetDefault("batch.formula_prefix", true)
	v.SetDefault("batch.overwrite", false)
	v.SetDefault("batch.cache_size", 256)

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// New returns a viper instance with defaults and environment binding but no
// file. Commands bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the config file into v and returns the validated result. With an
// explicit path the file must exist; otherwise ./steelqty.toml and then
// ~/.steelqty/config.toml are tried and a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = findConfig()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	return Load(New(), path)
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	// defaults are plain values and always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func findConfig() string {
	candidates := []string{"steelqty.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".steelqty", "config.toml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
