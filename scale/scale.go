package scale

import "github.com/sensordrivers/go-adis16490/protocol"

// Per-channel scale factors from the ADIS16490 datasheet. These must
// match the datasheet exactly; they are fixed per device family revision.
const (
	// AccelLSB is the accelerometer resolution in mg per LSB.
	AccelLSB = 0.5

	// GyroLSB is the gyroscope resolution in degrees/second per LSB.
	GyroLSB = 0.005

	// TempLSB is the temperature resolution in degrees Celsius per LSB.
	TempLSB = 0.01429

	// TempOffset is the temperature output offset in degrees Celsius.
	TempOffset = 25

	// DeltaAngleLSB is the delta angle resolution in degrees per LSB.
	DeltaAngleLSB = 0.022

	// DeltaVelocityLSB is the delta velocity resolution in mm/second per LSB.
	DeltaVelocityLSB = 6.104
)

// Accel converts a raw accelerometer word to acceleration in mg.
func Accel(raw int16) float64 {
	return float64(raw) * AccelLSB
}

// Gyro converts a raw gyroscope word to angular rate in degrees/second.
func Gyro(raw int16) float64 {
	return float64(raw) * GyroLSB
}

// Temp converts a raw temperature word to degrees Celsius.
func Temp(raw int16) float64 {
	return float64(raw)*TempLSB + TempOffset
}

// DeltaAngle converts a raw integrated-angle word to degrees.
func DeltaAngle(raw int16) float64 {
	return float64(raw) * DeltaAngleLSB
}

// DeltaVelocity converts a raw integrated-velocity word to mm/second.
func DeltaVelocity(raw int16) float64 {
	return float64(raw) * DeltaVelocityLSB
}

// Sample is a burst sample converted to physical units. Status words are
// carried through unscaled.
type Sample struct {
	// DiagStatus is the raw DIAG_STS word.
	DiagStatus int16

	// SysFault is the raw SYS_E_FLAG word.
	SysFault int16

	// GyroX, GyroY, GyroZ are angular rates in degrees/second.
	GyroX, GyroY, GyroZ float64

	// AccelX, AccelY, AccelZ are accelerations in mg.
	AccelX, AccelY, AccelZ float64

	// Temp is the internal temperature in degrees Celsius.
	Temp float64
}

// FromBurst converts a raw burst sample to physical units.
func FromBurst(b protocol.BurstSample) Sample {
	return Sample{
		DiagStatus: b.DiagStatus,
		SysFault:   b.SysFault,
		GyroX:      Gyro(b.GyroX),
		GyroY:      Gyro(b.GyroY),
		GyroZ:      Gyro(b.GyroZ),
		AccelX:     Accel(b.AccelX),
		AccelY:     Accel(b.AccelY),
		AccelZ:     Accel(b.AccelZ),
		Temp:       Temp(b.Temp),
	}
}
