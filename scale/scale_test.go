package scale

import (
	"math"
	"testing"

	"github.com/sensordrivers/go-adis16490/protocol"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAccel(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float64
	}{
		{name: "two LSB is one mg", raw: 2, want: 1.0},
		{name: "zero", raw: 0, want: 0},
		{name: "negative", raw: -2, want: -1.0},
		{name: "full scale positive", raw: 32767, want: 16383.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Accel(tt.raw); !almostEqual(got, tt.want) {
				t.Errorf("Accel(%d) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGyro(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float64
	}{
		{name: "200 LSB is one deg/s", raw: 200, want: 1.0},
		{name: "zero", raw: 0, want: 0},
		{name: "negative", raw: -200, want: -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gyro(tt.raw); !almostEqual(got, tt.want) {
				t.Errorf("Gyro(%d) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTemp(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want float64
	}{
		{name: "zero reads offset", raw: 0, want: 25.0},
		{name: "positive", raw: 100, want: 26.429},
		{name: "negative", raw: -1000, want: 10.71},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Temp(tt.raw); !almostEqual(got, tt.want) {
				t.Errorf("Temp(%d) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDeltaAngle(t *testing.T) {
	if got := DeltaAngle(1000); !almostEqual(got, 22.0) {
		t.Errorf("DeltaAngle(1000) = %v, want 22.0", got)
	}
	if got := DeltaAngle(-1000); !almostEqual(got, -22.0) {
		t.Errorf("DeltaAngle(-1000) = %v, want -22.0", got)
	}
}

func TestDeltaVelocity(t *testing.T) {
	if got := DeltaVelocity(100); !almostEqual(got, 610.4) {
		t.Errorf("DeltaVelocity(100) = %v, want 610.4", got)
	}
	if got := DeltaVelocity(-100); !almostEqual(got, -610.4) {
		t.Errorf("DeltaVelocity(-100) = %v, want -610.4", got)
	}
}

func TestFromBurst(t *testing.T) {
	b := protocol.BurstSample{
		DiagStatus: 0x0001,
		SysFault:   0x0002,
		GyroX:      200,
		GyroY:      -200,
		GyroZ:      0,
		AccelX:     2,
		AccelY:     -2,
		AccelZ:     4,
		Temp:       0,
	}

	s := FromBurst(b)

	if s.DiagStatus != 1 || s.SysFault != 2 {
		t.Errorf("status words not carried through: %+v", s)
	}
	if !almostEqual(s.GyroX, 1.0) || !almostEqual(s.GyroY, -1.0) || !almostEqual(s.GyroZ, 0) {
		t.Errorf("gyro = %v %v %v, want 1 -1 0", s.GyroX, s.GyroY, s.GyroZ)
	}
	if !almostEqual(s.AccelX, 1.0) || !almostEqual(s.AccelY, -1.0) || !almostEqual(s.AccelZ, 2.0) {
		t.Errorf("accel = %v %v %v, want 1 -1 2", s.AccelX, s.AccelY, s.AccelZ)
	}
	if !almostEqual(s.Temp, 25.0) {
		t.Errorf("temp = %v, want 25", s.Temp)
	}
}
