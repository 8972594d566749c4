package protocol

import "fmt"

// InvalidAddressError indicates a logical register address whose page
// holds no registers on this device. Such an address is a caller
// programming error; the device would silently latch a nonexistent page.
type InvalidAddressError struct {
	// Addr is the offending logical register address.
	Addr RegAddr
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid register address 0x%04X: page %d holds no registers",
		uint16(e.Addr), e.Addr.Page())
}

// IsInvalidAddress returns true if the error is an InvalidAddressError.
func IsInvalidAddress(err error) bool {
	_, ok := err.(*InvalidAddressError)
	return ok
}
