package adis

import (
	"testing"
	"time"

	"github.com/sensordrivers/go-adis16490/protocol"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Stall != protocol.StallTime {
		t.Errorf("Stall = %v, want %v", cfg.Stall, protocol.StallTime)
	}
	if cfg.BurstStall != protocol.BurstStallTime {
		t.Errorf("BurstStall = %v, want %v", cfg.BurstStall, protocol.BurstStallTime)
	}
	if cfg.ResetPulse != protocol.ResetPulseWidth {
		t.Errorf("ResetPulse = %v, want %v", cfg.ResetPulse, protocol.ResetPulseWidth)
	}
	if cfg.Delay == nil {
		t.Error("Delay is nil, want time.Sleep")
	}
	if cfg.StrictAddressing {
		t.Error("StrictAddressing defaults to true, want false")
	}
}

func TestTimingOptions(t *testing.T) {
	cfg := defaultConfig()

	WithStall(20 * time.Microsecond)(&cfg)
	WithBurstStall(40 * time.Microsecond)(&cfg)
	WithResetPulse(time.Millisecond)(&cfg)

	if cfg.Stall != 20*time.Microsecond {
		t.Errorf("Stall = %v, want 20µs", cfg.Stall)
	}
	if cfg.BurstStall != 40*time.Microsecond {
		t.Errorf("BurstStall = %v, want 40µs", cfg.BurstStall)
	}
	if cfg.ResetPulse != time.Millisecond {
		t.Errorf("ResetPulse = %v, want 1ms", cfg.ResetPulse)
	}
}

func TestTimingOptionsRejectNonPositive(t *testing.T) {
	cfg := defaultConfig()

	WithStall(0)(&cfg)
	WithBurstStall(-time.Microsecond)(&cfg)
	WithDelayFunc(nil)(&cfg)

	if cfg.Stall != protocol.StallTime {
		t.Errorf("zero stall accepted: %v", cfg.Stall)
	}
	if cfg.BurstStall != protocol.BurstStallTime {
		t.Errorf("negative burst stall accepted: %v", cfg.BurstStall)
	}
	if cfg.Delay == nil {
		t.Error("nil delay func accepted")
	}
}
