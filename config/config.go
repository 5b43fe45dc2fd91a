// SPDX-License-Identifier: MIT

// Package config holds smallmat process configuration.
//
// Values come from (lowest to highest precedence) DefaultConfig, an optional
// YAML file and SMALLMAT_* environment variables, where nested keys join with
// '_' (device.have_gpu → SMALLMAT_DEVICE_HAVE_GPU). The active snapshot is
// process-wide: SetGlobal installs one, Global and HaveGPU read it.
package config

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the environment variable prefix read by Load.
const EnvPrefix = "SMALLMAT"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Device  DeviceConfig  `mapstructure:"device" yaml:"device"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// DeviceConfig selects the array export path.
type DeviceConfig struct {
	// HaveGPU routes SmallMatrix.ToArray through the device backend.
	HaveGPU bool `mapstructure:"have_gpu" yaml:"have_gpu"`
	// Backend names the device backend activated by the CLI ("" = none).
	Backend string `mapstructure:"backend" yaml:"backend"`
}

// ExportConfig holds CLI export defaults.
type ExportConfig struct {
	Order string `mapstructure:"order" yaml:"order"` // F or C
	Copy  bool   `mapstructure:"copy" yaml:"copy"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			HaveGPU: false,
			Backend: "",
		},
		Export: ExportConfig{
			Order: "F",
			Copy:  false,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration from path and the environment. An empty path
// yields defaults plus environment overrides; a path that does not exist is
// an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newViper returns a viper instance seeded with DefaultConfig. Every key
// needs a default so AutomaticEnv can bind it during Unmarshal.
func newViper() *viper.Viper {
	d := DefaultConfig()
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("device.have_gpu", d.Device.HaveGPU)
	v.SetDefault("device.backend", d.Device.Backend)
	v.SetDefault("export.order", d.Export.Order)
	v.SetDefault("export.copy", d.Export.Copy)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	return v
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Export.Order {
	case "F", "C":
	default:
		return fmt.Errorf("%w: export.order %q (valid: F, C)", ErrInvalidConfig, c.Export.Order)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q (valid: json, console)", ErrInvalidConfig, c.Logging.Format)
	}
	if c.Device.HaveGPU && c.Device.Backend == "" {
		return fmt.Errorf("%w: device.have_gpu requires device.backend", ErrInvalidConfig)
	}

	return nil
}

var global atomic.Pointer[Config]

func init() {
	global.Store(DefaultConfig())
}

// SetGlobal installs c as the process-wide snapshot. nil restores defaults.
func SetGlobal(c *Config) {
	if c == nil {
		c = DefaultConfig()
	}
	global.Store(c)
}

// Global returns the process-wide snapshot. Callers must not mutate it.
func Global() *Config {
	return global.Load()
}

// HaveGPU reports whether array exports should target the device backend.
func HaveGPU() bool {
	return Global().Device.HaveGPU
}
