package adis

// Transport is the synchronous SPI capability the device handle drives.
// Implementations own the chip-select line and the fixed bus parameters
// the sensor requires: MSB-first bit order, clock idle high with data
// sampled on the trailing edge (SPI mode 3), and the device clock rate.
type Transport interface {
	// Exchange performs one complete transaction: chip select is
	// asserted, len(tx) bytes are clocked out while the same number of
	// bytes are clocked into rx, and chip select is deasserted. rx must
	// be at least as long as tx. The call blocks until the transaction
	// completes.
	Exchange(tx, rx []byte) error
}

// ResetLine drives the sensor's hardware reset input. Implementations
// translate the asserted flag to the electrical level the board wiring
// requires (the line is active low on the sensor itself).
type ResetLine interface {
	// Set asserts or releases the reset line.
	Set(asserted bool) error
}
