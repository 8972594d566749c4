package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newCaptureLogger() (*logrus.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	return l, &buf
}

func TestForwardsMessagesAndFields(t *testing.T) {
	l, buf := newCaptureLogger()
	adapter := New(l)

	adapter.Debug("page select", "page", 3)
	adapter.Info("hardware reset", "hold", "100ms")
	adapter.Error("transport fault")

	out := buf.String()
	for _, want := range []string{"page select", "page=3", "hardware reset", "hold=100ms", "transport fault"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOddKeyValuePairs(t *testing.T) {
	l, buf := newCaptureLogger()
	adapter := New(l)

	adapter.Info("msg", "dangling")
	if !strings.Contains(buf.String(), "dangling") {
		t.Errorf("dangling key dropped:\n%s", buf.String())
	}
}

func TestNilLoggerFallsBack(t *testing.T) {
	adapter := New(nil)
	// Must not panic.
	adapter.Debug("noop")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{in: "debug", want: logrus.DebugLevel},
		{in: "info", want: logrus.InfoLevel},
		{in: "error", want: logrus.ErrorLevel},
		{in: "bogus", want: logrus.InfoLevel},
		{in: "", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
