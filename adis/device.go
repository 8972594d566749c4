package adis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sensordrivers/go-adis16490/protocol"
)

// pageUnknown marks the cached page as stale after a failed page select:
// the device may or may not have latched, so the next access re-selects.
const pageUnknown = -1

// Device is a handle to one ADIS16490 on one SPI bus. It owns the
// current-page state of that sensor and serializes all register traffic
// through it: at most one logical operation (read, write, burst, reset)
// is in flight at a time, and an operation's transaction sequence is
// never interleaved with another's.
//
// Device is safe for concurrent use. Multiple sensors on distinct buses
// get independent handles with independent page state.
type Device struct {
	bus Transport
	cfg Config

	mu   sync.Mutex
	page int16
}

// FirmwareInfo holds the firmware identification registers from page 3.
// Revision and date fields are BCD-coded as the device reports them.
type FirmwareInfo struct {
	// Revision is the FIRM_REV word (major.minor BCD)
	Revision uint16

	// DayMonth is the FIRM_DM word (day and month of the build, BCD)
	DayMonth uint16

	// Year is the FIRM_Y word (build year, BCD)
	Year uint16

	// BootRevision is the BOOT_REV word
	BootRevision uint16
}

// New creates a device handle over the given transport. The sensor powers
// up on page 0, which is what the handle assumes; call Reset first if the
// device state is unknown.
//
// Example:
//
//	dev := adis.New(bus,
//	    adis.WithResetLine(rstPin),
//	    adis.WithLogger(logger),
//	)
func New(bus Transport, opts ...Option) *Device {
	if bus == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		bus: bus,
		cfg: cfg,
	}
}

// ReadRegister reads the 16-bit register at the given logical address.
// A page-select transaction is issued first only if the target register
// is not on the currently selected page.
func (d *Device) ReadRegister(ctx context.Context, addr protocol.RegAddr) (int16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return d.readRegister(addr)
}

// WriteRegister writes a 16-bit value to the register at the given
// logical address, low byte first then high byte, as the device requires.
// No read-back verification is performed; callers needing it should issue
// an explicit follow-up read.
func (d *Device) WriteRegister(ctx context.Context, addr protocol.RegAddr, value int16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return d.writeRegister(addr, value)
}

// ReadBurst retrieves one complete 9-field output snapshot using the
// pipelined burst sequence. The sample represents a single sampling
// instant and is returned by value; a transport fault anywhere in the
// sequence returns an error and no sample.
func (d *Device) ReadBurst(ctx context.Context) (protocol.BurstSample, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var sample protocol.BurstSample

	if err := ctx.Err(); err != nil {
		return sample, err
	}

	// The burst sequence is hand-tuned against page 0 register offsets.
	if err := d.selectPage(0, d.cfg.BurstStall); err != nil {
		return sample, err
	}

	seq := protocol.BurstRequests()
	var raw [protocol.BurstDataSize]byte
	var discard [protocol.FrameSize]byte

	// Prime the pipeline: request the first field, discard garbage data.
	if err := d.exchange("burst read", seq[0], discard[:]); err != nil {
		return sample, err
	}
	d.cfg.Delay(d.cfg.BurstStall)

	for i := 1; i < protocol.BurstTransactions; i++ {
		if err := ctx.Err(); err != nil {
			return sample, err
		}
		if err := d.exchange("burst read", seq[i], raw[2*(i-1):2*i]); err != nil {
			return sample, err
		}
		d.cfg.Delay(d.cfg.BurstStall)
	}

	return protocol.AssembleBurst(raw), nil
}

// Reset pulses the hardware reset line and waits the given recovery hold
// for the device to reboot. After reset the device is on page 0 with
// default configuration. Returns ErrNoResetLine if the handle was built
// without a reset line.
func (d *Device) Reset(ctx context.Context, hold time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if d.cfg.Reset == nil {
		return ErrNoResetLine
	}

	if err := d.cfg.Reset.Set(true); err != nil {
		return fmt.Errorf("assert reset: %w", err)
	}
	d.cfg.Delay(d.cfg.ResetPulse)
	if err := d.cfg.Reset.Set(false); err != nil {
		return fmt.Errorf("release reset: %w", err)
	}
	d.cfg.Delay(hold)

	d.page = 0
	d.logInfo("hardware reset", "hold", hold.String())
	return nil
}

// ProductID reads the PROD_ID register.
func (d *Device) ProductID(ctx context.Context) (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	w, err := d.readRegister(protocol.RegProdID)
	return uint16(w), err
}

// VerifyProduct reads PROD_ID and checks it against the ADIS16490
// identifier. A mismatch usually means a wiring or chip-select problem.
func (d *Device) VerifyProduct(ctx context.Context) error {
	id, err := d.ProductID(ctx)
	if err != nil {
		return err
	}
	if id != protocol.ProductIDValue {
		return &ProductMismatchError{
			Expected: protocol.ProductIDValue,
			Actual:   id,
		}
	}
	d.logDebug("product verified", "prod_id", fmt.Sprintf("0x%04X", id))
	return nil
}

// FirmwareRevision reads the firmware identification registers.
func (d *Device) FirmwareRevision(ctx context.Context) (FirmwareInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var info FirmwareInfo

	if err := ctx.Err(); err != nil {
		return info, err
	}

	regs := []struct {
		addr protocol.RegAddr
		dst  *uint16
	}{
		{protocol.RegFirmRev, &info.Revision},
		{protocol.RegFirmDM, &info.DayMonth},
		{protocol.RegFirmY, &info.Year},
		{protocol.RegBootRev, &info.BootRevision},
	}
	for _, r := range regs {
		w, err := d.readRegister(r.addr)
		if err != nil {
			return FirmwareInfo{}, err
		}
		*r.dst = uint16(w)
	}
	return info, nil
}

// SerialNumber reads the lot-specific serial number from page 4.
func (d *Device) SerialNumber(ctx context.Context) (uint16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	w, err := d.readRegister(protocol.RegSerialNum)
	return uint16(w), err
}

// SetDecimation writes the DEC_RATE register. The output sample rate is
// the internal rate divided by rate+1.
func (d *Device) SetDecimation(ctx context.Context, rate uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.writeRegister(protocol.RegDecRate, int16(rate)); err != nil {
		return err
	}
	d.logDebug("decimation set", "dec_rate", rate)
	return nil
}

// SoftwareReset restarts the device firmware through GLOB_CMD and waits
// the documented start-up time. Unlike Reset it needs no reset line.
func (d *Device) SoftwareReset(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.writeRegister(protocol.RegGlobCmd, protocol.GlobCmdSoftwareReset); err != nil {
		return err
	}
	d.cfg.Delay(protocol.SoftwareResetTime)

	// The device reboots onto page 0 regardless of what was selected.
	d.page = 0
	d.logInfo("software reset")
	return nil
}

// SelfTest triggers the automatic self test routine, waits for it to
// complete, and checks the error flags. A failure is returned as a
// SelfTestError carrying SYS_E_FLAG and DIAG_STS for diagnosis.
func (d *Device) SelfTest(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := d.writeRegister(protocol.RegGlobCmd, protocol.GlobCmdSelfTest); err != nil {
		return err
	}
	d.cfg.Delay(protocol.SelfTestTime)

	flags, err := d.readRegister(protocol.RegSysEFlag)
	if err != nil {
		return err
	}
	if flags == 0 {
		d.logDebug("self test passed")
		return nil
	}

	diag, err := d.readRegister(protocol.RegDiagSts)
	if err != nil {
		return err
	}
	return &SelfTestError{
		Flags: uint16(flags),
		Diag:  uint16(diag),
	}
}

// Poll reads burst samples at the given interval and delivers each to cb
// until the context is cancelled. Returns the context's error on exit, or
// the first burst failure.
func (d *Device) Poll(ctx context.Context, interval time.Duration, cb BurstCallback) error {
	if cb == nil {
		return fmt.Errorf("callback cannot be nil")
	}
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sample, err := d.ReadBurst(ctx)
			if err != nil {
				return err
			}
			cb(sample)
		}
	}
}

// readRegister implements the single-register read path. Caller holds the
// lock.
func (d *Device) readRegister(addr protocol.RegAddr) (int16, error) {
	if d.cfg.StrictAddressing && !protocol.ValidPage(addr.Page()) {
		return 0, &protocol.InvalidAddressError{Addr: addr}
	}

	if err := d.selectPage(addr.Page(), d.cfg.Stall); err != nil {
		return 0, err
	}

	var rx [protocol.FrameSize]byte

	// Address transaction: request the register, returned bytes are the
	// previous transaction's data and are discarded.
	if err := d.exchange("read register", protocol.ReadRequest(addr.Offset()), rx[:]); err != nil {
		return 0, err
	}
	d.cfg.Delay(d.cfg.Stall)

	// Data transaction: clock the register content out with fill bytes.
	if err := d.exchange("read register", protocol.ReadRequest(protocol.FillByte), rx[:]); err != nil {
		return 0, err
	}
	d.cfg.Delay(d.cfg.Stall)

	return protocol.Word(rx[0], rx[1]), nil
}

// writeRegister implements the single-register write path. Caller holds
// the lock.
func (d *Device) writeRegister(addr protocol.RegAddr, value int16) error {
	if d.cfg.StrictAddressing && !protocol.ValidPage(addr.Page()) {
		return &protocol.InvalidAddressError{Addr: addr}
	}

	if err := d.selectPage(addr.Page(), d.cfg.Stall); err != nil {
		return err
	}

	lo, hi := protocol.WritePair(addr.Offset(), value)
	var rx [protocol.FrameSize]byte

	if err := d.exchange("write register", lo, rx[:]); err != nil {
		return err
	}
	d.cfg.Delay(d.cfg.Stall)

	if err := d.exchange("write register", hi, rx[:]); err != nil {
		return err
	}
	d.cfg.Delay(d.cfg.Stall)

	return nil
}

// selectPage switches the device to the given page if it is not already
// selected, then waits the stall interval so the page latch settles
// before the next transaction. Caller holds the lock.
func (d *Device) selectPage(page byte, stall time.Duration) error {
	if d.page == int16(page) {
		return nil
	}

	sel := protocol.PageSelect(page)
	var rx [protocol.FrameSize]byte
	if err := d.bus.Exchange(sel[:], rx[:]); err != nil {
		// The device may or may not have latched the new page.
		d.page = pageUnknown
		return &TransportError{Op: "page select", Err: err}
	}
	d.page = int16(page)
	d.cfg.Delay(stall)

	d.logDebug("page select", "page", page)
	return nil
}

// exchange runs one transaction and wraps transport failures.
func (d *Device) exchange(op string, tx [protocol.FrameSize]byte, rx []byte) error {
	if err := d.bus.Exchange(tx[:], rx); err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return nil
}

// logDebug logs a debug message if a logger is configured.
func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.cfg.Logger != nil {
		d.cfg.Logger.Info(msg, keysAndValues...)
	}
}
