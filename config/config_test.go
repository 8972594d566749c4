package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
bridge:
  port: /dev/ttyACM1
  baud: 921600
  read_timeout_ms: 250
timing:
  stall_us: 20
log_level: debug
strict_addressing: true
`)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Bridge.Port != "/dev/ttyACM1" {
		t.Errorf("port = %q, want /dev/ttyACM1", p.Bridge.Port)
	}
	if p.Bridge.Baud != 921600 {
		t.Errorf("baud = %d, want 921600", p.Bridge.Baud)
	}
	if got := p.Bridge.ReadTimeout(); got != 250*time.Millisecond {
		t.Errorf("read timeout = %v, want 250ms", got)
	}
	if p.Timing.StallUS != 20 {
		t.Errorf("stall = %d, want 20", p.Timing.StallUS)
	}
	if p.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", p.LogLevel)
	}
	if !p.StrictAddressing {
		t.Error("strict_addressing not honored")
	}

	// Unset timing fields keep defaults.
	if p.Timing.BurstStallUS != 10 {
		t.Errorf("burst stall = %d, want default 10", p.Timing.BurstStallUS)
	}
	if p.Timing.ResetPulseUS != 500 {
		t.Errorf("reset pulse = %d, want default 500", p.Timing.ResetPulseUS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeProfile(t, "bridge: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestOptions(t *testing.T) {
	p := Default()
	p.Timing.StallUS = 0 // explicit zero must not emit an override

	opts := p.Options()
	if len(opts) == 0 {
		t.Fatal("no options produced")
	}

	// One strict-addressing option plus the two remaining timing fields.
	if len(opts) != 3 {
		t.Errorf("options = %d, want 3", len(opts))
	}
}
