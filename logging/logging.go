// Package logging adapts logrus to the adis.Logger interface, so the
// core driver stays logging-framework agnostic while applications get
// structured output.
package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/sensordrivers/go-adis16490/adis"
)

// logrusLogger forwards driver log calls to a logrus logger, mapping the
// key-value pairs to logrus fields.
type logrusLogger struct {
	l *logrus.Logger
}

// New wraps a logrus logger as an adis.Logger.
//
// Example:
//
//	log := logrus.New()
//	log.SetLevel(logrus.DebugLevel)
//	dev := adis.New(bus, adis.WithLogger(logging.New(log)))
func New(l *logrus.Logger) adis.Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{l: l}
}

func (a *logrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	a.l.WithFields(fields(keysAndValues)).Debug(msg)
}

func (a *logrusLogger) Info(msg string, keysAndValues ...interface{}) {
	a.l.WithFields(fields(keysAndValues)).Info(msg)
}

func (a *logrusLogger) Error(msg string, keysAndValues ...interface{}) {
	a.l.WithFields(fields(keysAndValues)).Error(msg)
}

// fields converts alternating key-value pairs to logrus fields. A
// trailing key without a value is kept with a nil value rather than
// dropped.
func fields(keysAndValues []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = "arg"
		}
		if i+1 < len(keysAndValues) {
			f[key] = keysAndValues[i+1]
		} else {
			f[key] = nil
		}
	}
	return f
}

// ParseLevel maps a profile log-level string to a logrus level,
// defaulting to info for unknown values.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
