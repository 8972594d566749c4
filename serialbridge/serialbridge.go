// Package serialbridge implements the adis transport over a UART-to-SPI
// bridge microcontroller.
//
// Hosts without native SPI (or with the sensor on a remote fixture)
// reach it through a small bridge MCU on a serial port. The bridge
// speaks a minimal command protocol:
//
//	transfer: host -> [0x01][n][tx bytes...]   bridge -> [n rx bytes]
//	reset:    host -> [0x02][state]            bridge -> [0x02]
//
// The bridge owns chip select framing: every transfer command is one
// chip-select-framed SPI transaction on the far side, so Bridge
// satisfies adis.Transport directly. The reset command drives the
// bridge's reset output, so Bridge is also an adis.ResetLine.
package serialbridge

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"
)

// Bridge protocol command bytes.
const (
	cmdTransfer = 0x01
	cmdSetReset = 0x02

	// maxTransfer is the largest SPI transaction the one-byte length
	// field can carry. Driver transactions are two bytes, so this is
	// never a constraint in practice.
	maxTransfer = 255
)

// Bridge is a serial connection to the UART-to-SPI bridge. It implements
// adis.Transport and adis.ResetLine.
type Bridge struct {
	mu sync.Mutex
	rw io.ReadWriteCloser
}

// New wraps an open serial stream as a Bridge. Useful for tests and for
// custom stream types; production callers normally use Open.
func New(rw io.ReadWriteCloser) *Bridge {
	if rw == nil {
		panic("stream cannot be nil")
	}
	return &Bridge{rw: rw}
}

// Open connects to the bridge on the given serial port.
//
// Example:
//
//	bridge, err := serialbridge.Open("/dev/ttyUSB0", 115200, time.Second)
func Open(port string, baud int, readTimeout time.Duration) (*Bridge, error) {
	c := &serial.Config{
		Name:        port,
		Baud:        baud,
		ReadTimeout: readTimeout,
	}
	p, err := serial.OpenPort(c)
	if err != nil {
		return nil, fmt.Errorf("open bridge port %s: %w", port, err)
	}
	return &Bridge{rw: p}, nil
}

// Exchange performs one chip-select-framed SPI transaction through the
// bridge: len(tx) bytes out, the same number into rx.
func (b *Bridge) Exchange(tx, rx []byte) error {
	if len(tx) == 0 {
		return fmt.Errorf("empty transaction")
	}
	if len(tx) > maxTransfer {
		return fmt.Errorf("transaction length %d exceeds bridge maximum %d", len(tx), maxTransfer)
	}
	if len(rx) < len(tx) {
		return fmt.Errorf("rx buffer length %d shorter than tx length %d", len(rx), len(tx))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	frame := make([]byte, 0, 2+len(tx))
	frame = append(frame, cmdTransfer, byte(len(tx)))
	frame = append(frame, tx...)

	if _, err := b.rw.Write(frame); err != nil {
		return fmt.Errorf("write transfer command: %w", err)
	}
	if _, err := io.ReadFull(b.rw, rx[:len(tx)]); err != nil {
		return fmt.Errorf("read transfer response: %w", err)
	}
	return nil
}

// Set drives the bridge's reset output line.
func (b *Bridge) Set(asserted bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := byte(0)
	if asserted {
		state = 1
	}
	if _, err := b.rw.Write([]byte{cmdSetReset, state}); err != nil {
		return fmt.Errorf("write reset command: %w", err)
	}

	var ack [1]byte
	if _, err := io.ReadFull(b.rw, ack[:]); err != nil {
		return fmt.Errorf("read reset ack: %w", err)
	}
	if ack[0] != cmdSetReset {
		return fmt.Errorf("unexpected reset ack 0x%02X", ack[0])
	}
	return nil
}

// Close closes the underlying serial port.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rw.Close()
}
