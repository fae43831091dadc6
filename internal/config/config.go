// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. PENTASIGN_LOGGER_LEVEL.
const EnvPrefix = "PENTASIGN"

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// LoggerConfig controls the zap logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	// File enables a rotated JSON log file in addition to the console.
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// RenderConfig holds SVG defaults.
type RenderConfig struct {
	Size   float64 `mapstructure:"size" yaml:"size"`
	Indent int     `mapstructure:"indent" yaml:"indent"`
}

// OutputConfig holds the default encoding for the pattern command.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Config is the complete application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// SetDefaults registers every key so that env overrides resolve even
// without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "pentasign")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("render.size", 220.0)
	v.SetDefault("render.indent", 0)

	v.SetDefault("output.format", "json")
}

// New returns a viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file into v and unmarshals the result.
// With file == "" it looks for ./pentasign.yaml and tolerates its absence.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pentasign")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the current viper state.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value domains.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format %q (want console|json): %w", c.Logger.Format, ErrInvalidConfig)
	}
	if !(c.Render.Size > 0) || math.IsInf(c.Render.Size, 0) {
		return fmt.Errorf("render.size %v must be finite and > 0: %w", c.Render.Size, ErrInvalidConfig)
	}
	if c.Render.Indent < 0 {
		return fmt.Errorf("render.indent %d must be >= 0: %w", c.Render.Indent, ErrInvalidConfig)
	}
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml", "svg":
	default:
		return fmt.Errorf("output.format %q (want json|yaml|svg): %w", c.Output.Format, ErrInvalidConfig)
	}
	return nil
}
