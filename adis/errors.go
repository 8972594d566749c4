package adis

import (
	"errors"
	"fmt"
)

// ErrNoResetLine is returned by Reset when the device handle was built
// without a ResetLine.
var ErrNoResetLine = errors.New("no reset line configured")

// TransportError indicates a bus-level fault reported by the Transport.
// The protocol itself has no error channel, so this is the only way a
// fault is distinguished from valid data; it always wraps the underlying
// transport cause.
type TransportError struct {
	// Op is the logical operation that was in flight
	Op string

	// Err is the underlying transport failure
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport fault: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProductMismatchError indicates the PROD_ID register did not contain
// the ADIS16490 product identifier. Usually a wiring or chip-select
// problem rather than a wrong part.
type ProductMismatchError struct {
	Expected uint16
	Actual   uint16
}

func (e *ProductMismatchError) Error() string {
	return fmt.Sprintf("product mismatch: expected PROD_ID 0x%04X, device reports 0x%04X",
		e.Expected, e.Actual)
}

// SelfTestError indicates the automatic self test reported a failure.
// Flags holds SYS_E_FLAG and Diag the per-sensor DIAG_STS detail.
type SelfTestError struct {
	Flags uint16
	Diag  uint16
}

func (e *SelfTestError) Error() string {
	return fmt.Sprintf("self test failed: SYS_E_FLAG=0x%04X DIAG_STS=0x%04X",
		e.Flags, e.Diag)
}
