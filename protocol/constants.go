package protocol

import "time"

// Bus framing constants.
const (
	// FrameSize is the fixed transaction size in bytes. The bus word
	// size is 16 bits, so every transaction is two bytes regardless of
	// direction.
	FrameSize = 2

	// WriteBit is OR'd into the address byte of a write transaction
	// (bit 7). A page select is a write to offset 0x00, which is why its
	// first byte is exactly 0x80.
	WriteBit = 0x80

	// FillByte pads the unused half of a transaction.
	FillByte = 0x00
)

// ProductIDValue is the expected PROD_ID register content (16490 decimal).
const ProductIDValue = 0x406A

// GLOB_CMD bit assignments (page 3).
const (
	// GlobCmdSelfTest triggers the automatic self test routine.
	GlobCmdSelfTest = 0x0002

	// GlobCmdFlashUpdate commits the user register bank to flash.
	GlobCmdFlashUpdate = 0x0008

	// GlobCmdFactoryCal restores factory calibration.
	GlobCmdFactoryCal = 0x0040

	// GlobCmdSoftwareReset restarts the device firmware; equivalent to
	// pulsing the hardware reset line.
	GlobCmdSoftwareReset = 0x0080
)

// Timing constants. These are empirically required settling times from
// the datasheet, not tunables: shaving them produces wrong-page reads.
const (
	// StallTime is the minimum delay between single-register
	// transactions, needed for the device's internal page latch and
	// conversion logic to settle.
	StallTime = 5 * time.Microsecond

	// BurstStallTime is the inter-transaction delay used inside the
	// pipelined burst sequence.
	BurstStallTime = 10 * time.Microsecond

	// ResetPulseWidth is the minimum time the hardware reset line must
	// be held asserted.
	ResetPulseWidth = 500 * time.Microsecond

	// SelfTestTime is the time the automatic self test routine needs
	// before SYS_E_FLAG reflects the result.
	SelfTestTime = 24 * time.Millisecond

	// SoftwareResetTime is the device start-up time after a software
	// reset before registers respond.
	SoftwareResetTime = 250 * time.Millisecond
)
