// zaplogger_logger.go
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// defaultLogger is an implementation of the Logger interface using Uber's zap
// logging library. The logLevel field controls the verbosity of the logs this
// logger will produce, allowing filtering of logs based on their importance.
type defaultLogger struct {
	logger   *zap.Logger // logger holds the reference to the zap.Logger instance.
	logLevel LogLevel    // logLevel determines the current logging level (e.g., DEBUG, INFO, WARN).
}

// Logger interface with structured logging capabilities at various levels.
type Logger interface {
	GetLogLevel() LogLevel
	SetLevel(level LogLevel)
	With(fields ...zapcore.Field) Logger
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field) error

	// LogDeprecation records a server-signalled deprecation of an endpoint.
	// timestamp and link may be empty when the response did not carry them.
	LogDeprecation(event string, requestID string, method string, url string, timestamp string, link string)
}

// BuildLogger creates a zap-backed Logger at the given level, using zap's
// production configuration.
func BuildLogger(level LogLevel) Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return &defaultLogger{
		logger:   zapLogger,
		logLevel: level,
	}
}

// NewNopLogger returns a Logger that discards everything. Used as the default
// where callers opt out of logging.
func NewNopLogger() Logger {
	return &defaultLogger{
		logger:   zap.NewNop(),
		logLevel: LogLevelFatal,
	}
}

// GetLogLevel returns the current logging level of the logger. This allows for
// checking the logger's verbosity level programmatically, which can be useful
// in conditional logging scenarios.
func (d *defaultLogger) GetLogLevel() LogLevel {
	return d.logLevel
}

// SetLevel updates the logging level of the logger. It controls the verbosity
// of the logs, allowing the option to filter out less severe messages based on
// the specified level.
func (d *defaultLogger) SetLevel(level LogLevel) {
	d.logLevel = level
}

// With adds contextual key-value pairs to the logger, returning a new logger
// instance with the context.
func (d *defaultLogger) With(fields ...zapcore.Field) Logger {
	return &defaultLogger{
		logger:   d.logger.With(fields...),
		logLevel: d.logLevel,
	}
}

// Debug logs a message at the Debug level. This level is typically used for
// detailed troubleshooting information that is only relevant during active
// development or debugging.
func (d *defaultLogger) Debug(msg string, fields ...zapcore.Field) {
	if d.logLevel <= LogLevelDebug {
		d.logger.Debug(msg, fields...)
	}
}

// Info logs a message at the Info level. This level is used for informational
// messages that highlight the normal operation of the application.
func (d *defaultLogger) Info(msg string, fields ...zapcore.Field) {
	if d.logLevel <= LogLevelInfo {
		d.logger.Info(msg, fields...)
	}
}

// Warn logs a message at the Warn level. This level is used for potentially
// harmful situations or to indicate that some issues may require attention.
func (d *defaultLogger) Warn(msg string, fields ...zapcore.Field) {
	if d.logLevel <= LogLevelWarn {
		d.logger.Warn(msg, fields...)
	}
}

// Error logs a message at the Error level and returns a formatted error.
func (d *defaultLogger) Error(msg string, fields ...zapcore.Field) error {
	if d.logLevel <= LogLevelError {
		d.logger.Error(msg, fields...)
	}
	return fmt.Errorf(msg)
}

// LogDeprecation logs a warning for an endpoint the server has marked as
// deprecated. Empty timestamp and link fields are omitted from the entry.
func (d *defaultLogger) LogDeprecation(event string, requestID string, method string, url string, timestamp string, link string) {
	fields := []zapcore.Field{
		zap.String("event", event),
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", url),
	}
	if timestamp != "" {
		fields = append(fields, zap.String("deprecated_at", timestamp))
	}
	if link != "" {
		fields = append(fields, zap.String("deprecation_link", link))
	}
	d.Warn("API endpoint is deprecated", fields...)
}
