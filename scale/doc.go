// Package scale converts raw ADIS16490 register words to physical units.
//
// All conversions are pure arithmetic over the fixed per-channel scale
// factors from the datasheet; there is no state and no failure mode.
// Raw words come from either the single-register read path or a burst
// sample:
//
//	sample, _ := dev.ReadBurst(ctx)
//	fmt.Println(scale.Gyro(sample.GyroX), "deg/s")
//
// FromBurst converts a whole burst sample in one call.
package scale
