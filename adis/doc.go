// Package adis provides the stateful device handle for the ADIS16490 IMU.
//
// The handle owns the sensor's current-page state and drives all register
// traffic through an injected Transport, issuing a page-select transaction
// only when an access targets a page other than the one currently
// selected. During periodic sampling everything of interest lives on page
// 0, so the cache eliminates a full bus round trip per access.
//
// # Usage
//
// Construct a handle over any Transport implementation (a real SPI bus, a
// serial bridge, or a test mock):
//
//	dev := adis.New(bus,
//	    adis.WithResetLine(rstPin),
//	    adis.WithLogger(logger),
//	)
//
//	if err := dev.VerifyProduct(ctx); err != nil {
//	    return err
//	}
//
//	sample, err := dev.ReadBurst(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("gyro X: %.3f deg/s\n", scale.Gyro(sample.GyroX))
//
// # Concurrency
//
// A Device serializes whole operations, never individual transactions: a
// page select issued between another operation's address and data phases
// would silently redirect the transfer to the wrong page. The handle is
// safe for concurrent use; callers never manage the lock themselves.
//
// # Timing
//
// The mandated settling delays (stall intervals, reset pulse, self-test
// and start-up times) are honored as real wall-clock waits through a
// configurable delay function. They are device requirements, not
// tunables.
//
// # Error Handling
//
// The wire protocol has no error channel; faults the transport can
// detect are surfaced as *TransportError instead of being masked as
// zero data. A fault during a page select leaves the device page
// unknown, and the handle re-selects on the next access.
package adis
