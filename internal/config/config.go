// Package config resolves sdodump settings from defaults, an optional TOML
// file, SDODUMP_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jacoelho/sdo/internal/render"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SDODUMP"

// Keys, as used in the config file. Flags use the same names with dashes.
const (
	KeyLogLevel    = "log_level"
	KeyCyclePolicy = "cycle_policy"
	KeyMaxDepth    = "max_depth"
	KeyEscape      = "escape"
)

// Config holds resolved settings.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	CyclePolicy string `mapstructure:"cycle_policy"`
	MaxDepth    int    `mapstructure:"max_depth"`
	Escape      bool   `mapstructure:"escape"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    log.WarnLevel.String(),
		CyclePolicy: render.ContainmentOnly.String(),
		MaxDepth:    render.DefaultMaxDepth,
	}
}

// LoadOptions selects the sources Load consults.
type LoadOptions struct {
	// ConfigFile is read as TOML when set. A missing file is an error.
	ConfigFile string
	// Flags are bound by key name with underscores replaced by dashes.
	// Only flags the user changed take precedence over other sources.
	Flags *pflag.FlagSet
}

// Load resolves and validates the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	defaults := Default()
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyCyclePolicy, defaults.CyclePolicy)
	v.SetDefault(KeyMaxDepth, defaults.MaxDepth)
	v.SetDefault(KeyEscape, defaults.Escape)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range []string{KeyLogLevel, KeyCyclePolicy, KeyMaxDepth, KeyEscape} {
			flag := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Policy parses CyclePolicy.
func (c Config) Policy() (render.CyclePolicy, error) {
	policy, err := render.ParseCyclePolicy(c.CyclePolicy)
	if err != nil {
		return render.ContainmentOnly, fmt.Errorf("cycle_policy: %w", err)
	}
	return policy, nil
}

// RenderOptions converts the settings into walker options.
func (c Config) RenderOptions() (render.Options, error) {
	policy, err := c.Policy()
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{CyclePolicy: policy, MaxDepth: c.MaxDepth}, nil
}
