package adis

import (
	"time"

	"github.com/sensordrivers/go-adis16490/protocol"
)

// Config holds the device handle configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// Reset drives the hardware reset line (optional; Reset returns
	// ErrNoResetLine without it)
	Reset ResetLine

	// Stall is the settling delay after each single-register transaction
	Stall time.Duration

	// BurstStall is the settling delay between burst transactions
	BurstStall time.Duration

	// ResetPulse is how long the hardware reset line is held asserted
	ResetPulse time.Duration

	// Delay performs the mandated wall-clock waits. Defaults to
	// time.Sleep; hosts with hardware timers may substitute their own.
	Delay func(time.Duration)

	// StrictAddressing makes reads and writes fail fast on addresses
	// whose page holds no registers, instead of latching a nonexistent
	// page on the device
	StrictAddressing bool
}

// defaultConfig returns the default configuration. The timing values are
// the datasheet settling times from the protocol package.
func defaultConfig() Config {
	return Config{
		Stall:      protocol.StallTime,
		BurstStall: protocol.BurstStallTime,
		ResetPulse: protocol.ResetPulseWidth,
		Delay:      time.Sleep,
	}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for device operations.
//
// Example:
//
//	dev := adis.New(bus, adis.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithResetLine provides control of the sensor's hardware reset input.
//
// Example:
//
//	dev := adis.New(bus, adis.WithResetLine(rstPin))
func WithResetLine(line ResetLine) Option {
	return func(c *Config) {
		c.Reset = line
	}
}

// WithStall overrides the single-register settling delay. The default is
// the datasheet minimum; longer is safe, shorter risks wrong-page reads.
//
// Example:
//
//	dev := adis.New(bus, adis.WithStall(20*time.Microsecond))
func WithStall(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Stall = d
		}
	}
}

// WithBurstStall overrides the inter-transaction delay of the burst
// sequence.
func WithBurstStall(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.BurstStall = d
		}
	}
}

// WithResetPulse overrides how long the hardware reset line is held.
func WithResetPulse(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ResetPulse = d
		}
	}
}

// WithDelayFunc substitutes the wait primitive used for stall intervals.
// Intended for hosts with hardware delay timers and for tests.
//
// Example:
//
//	dev := adis.New(bus, adis.WithDelayFunc(board.DelayPrecise))
func WithDelayFunc(delay func(time.Duration)) Option {
	return func(c *Config) {
		if delay != nil {
			c.Delay = delay
		}
	}
}

// WithStrictAddressing enables fail-fast validation of register pages.
// Default is false, matching the device's permissive behavior.
//
// Example:
//
//	dev := adis.New(bus, adis.WithStrictAddressing(true))
func WithStrictAddressing(strict bool) Option {
	return func(c *Config) {
		c.StrictAddressing = strict
	}
}
