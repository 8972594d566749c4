package adis

import (
	"errors"
	"strings"
	"testing"
)

func TestTransportErrorMessage(t *testing.T) {
	base := errors.New("short circuit")
	err := &TransportError{Op: "burst read", Err: base}

	msg := err.Error()
	if !strings.Contains(msg, "burst read") {
		t.Errorf("message %q missing operation", msg)
	}
	if !strings.Contains(msg, "short circuit") {
		t.Errorf("message %q missing cause", msg)
	}
	if !errors.Is(err, base) {
		t.Error("Unwrap does not expose the cause")
	}
}

func TestProductMismatchErrorMessage(t *testing.T) {
	err := &ProductMismatchError{Expected: 0x406A, Actual: 0x0000}
	want := "product mismatch: expected PROD_ID 0x406A, device reports 0x0000"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSelfTestErrorMessage(t *testing.T) {
	err := &SelfTestError{Flags: 0x0020, Diag: 0x0003}
	want := "self test failed: SYS_E_FLAG=0x0020 DIAG_STS=0x0003"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
