// Package config loads ev3 tool configuration from YAML.
//
// A missing file is not an error: Load returns the defaults. Environment
// variables EV3_DEVICE, EV3_LOG_LEVEL and EV3_CAPTURE override the file.
//
//	serial:
//	  device: /dev/rfcomm0
//	  baud_rate: 115200
//	logging:
//	  level: info       # debug, info, warn, error
//	  format: text      # text, json
//	capture:
//	  path: session.ev3log
//	keepalive:
//	  interval: 5s
//	  max_failures: 3
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ev3-protocol/ev3-go/pkg/ev3"
	"github.com/ev3-protocol/ev3-go/pkg/transport"
)

// Config is the root configuration.
type Config struct {
	Serial    SerialConfig    `yaml:"serial"`
	Logging   LoggingConfig   `yaml:"logging"`
	Capture   CaptureConfig   `yaml:"capture"`
	KeepAlive KeepAliveConfig `yaml:"keepalive"`
}

// SerialConfig selects the RFCOMM device node.
type SerialConfig struct {
	Device   string `yaml:"device"`
	BaudRate int    `yaml:"baud_rate"`
	Layer    int    `yaml:"layer"`
}

// LoggingConfig configures the operational logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CaptureConfig configures protocol capture. An empty path disables it.
type CaptureConfig struct {
	Path string `yaml:"path"`
}

// KeepAliveConfig configures the liveness monitor. A zero interval
// disables it.
type KeepAliveConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxFailures int           `yaml:"max_failures"`
}

// Monitor returns the monitor configuration.
func (k KeepAliveConfig) Monitor() ev3.MonitorConfig {
	return ev3.MonitorConfig{Interval: k.Interval, MaxFailures: k.MaxFailures}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Device:   "/dev/rfcomm0",
			BaudRate: transport.DefaultBaudRate,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		KeepAlive: KeepAliveConfig{
			Interval:    ev3.DefaultProbeInterval,
			MaxFailures: ev3.DefaultMaxFailures,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EV3_DEVICE"); v != "" {
		cfg.Serial.Device = v
	}
	if v := os.Getenv("EV3_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("EV3_CAPTURE"); v != "" {
		cfg.Capture.Path = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Serial.Device == "" {
		errs = append(errs, "serial.device is required")
	}
	if c.Serial.BaudRate <= 0 {
		errs = append(errs, "serial.baud_rate must be positive")
	}
	if c.Serial.Layer < 0 || c.Serial.Layer > 3 {
		errs = append(errs, "serial.layer must be 0-3")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q is not one of text, json", c.Logging.Format))
	}

	if c.KeepAlive.Interval < 0 {
		errs = append(errs, "keepalive.interval must not be negative")
	}
	if c.KeepAlive.MaxFailures < 0 {
		errs = append(errs, "keepalive.max_failures must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}
