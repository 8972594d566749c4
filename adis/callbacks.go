package adis

import "github.com/sensordrivers/go-adis16490/protocol"

// BurstCallback receives one complete burst sample per sampling pass.
// Implementations should return quickly: the next sampling pass is not
// scheduled until the callback returns.
//
// Example:
//
//	err := dev.Poll(ctx, 10*time.Millisecond, func(s protocol.BurstSample) {
//	    fmt.Println(scale.Gyro(s.GyroX))
//	})
type BurstCallback func(protocol.BurstSample)

// Logger is an optional logging interface that can be provided to the
// device handle. This allows integration with any logging framework; the
// logging package provides a logrus-backed implementation.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	dev := adis.New(bus, adis.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
