package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sensordrivers/go-adis16490/adis"
	"github.com/sensordrivers/go-adis16490/protocol"
)

// TimingConfig overrides the bus settling delays, in microseconds.
// Zero values keep the datasheet defaults; values below the datasheet
// minimums are not meaningful and are rejected by the device options.
type TimingConfig struct {
	StallUS      int `yaml:"stall_us"`
	BurstStallUS int `yaml:"burst_stall_us"`
	ResetPulseUS int `yaml:"reset_pulse_us"`
}

// BridgeConfig describes the serial port of a UART-to-SPI bridge.
type BridgeConfig struct {
	Port          string `yaml:"port"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMS int    `yaml:"read_timeout_ms"`
}

// Profile is the top-level structure of a device profile file.
type Profile struct {
	Bridge           BridgeConfig `yaml:"bridge"`
	Timing           TimingConfig `yaml:"timing"`
	LogLevel         string       `yaml:"log_level"`
	StrictAddressing bool         `yaml:"strict_addressing"`
}

// Default returns a profile with the datasheet timing and a typical
// bridge setup.
func Default() Profile {
	return Profile{
		Bridge: BridgeConfig{
			Port:          "/dev/ttyUSB0",
			Baud:          115200,
			ReadTimeoutMS: 1000,
		},
		Timing: TimingConfig{
			StallUS:      int(protocol.StallTime / time.Microsecond),
			BurstStallUS: int(protocol.BurstStallTime / time.Microsecond),
			ResetPulseUS: int(protocol.ResetPulseWidth / time.Microsecond),
		},
		LogLevel: "info",
	}
}

// Load reads and parses a device profile. Fields absent from the file
// keep their defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device profile: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse device profile: %w", err)
	}
	return &p, nil
}

// Options translates the profile's device-facing settings into adis
// options.
func (p *Profile) Options() []adis.Option {
	opts := []adis.Option{
		adis.WithStrictAddressing(p.StrictAddressing),
	}
	if p.Timing.StallUS > 0 {
		opts = append(opts, adis.WithStall(time.Duration(p.Timing.StallUS)*time.Microsecond))
	}
	if p.Timing.BurstStallUS > 0 {
		opts = append(opts, adis.WithBurstStall(time.Duration(p.Timing.BurstStallUS)*time.Microsecond))
	}
	if p.Timing.ResetPulseUS > 0 {
		opts = append(opts, adis.WithResetPulse(time.Duration(p.Timing.ResetPulseUS)*time.Microsecond))
	}
	return opts
}

// ReadTimeout returns the bridge read timeout as a duration.
func (b BridgeConfig) ReadTimeout() time.Duration {
	return time.Duration(b.ReadTimeoutMS) * time.Millisecond
}
