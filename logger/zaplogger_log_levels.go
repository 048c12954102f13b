// zaplogger_log_levels.go
package logger

// LogLevel mirrors zap's levels; lower values are more verbose.
type LogLevel int

const (
	LogLevelDebug LogLevel = -1
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 1
	LogLevelError LogLevel = 2
	LogLevelPanic LogLevel = 4
	LogLevelFatal LogLevel = 5
)

// ParseLogLevelFromString takes a string representation of the log level and
// returns the corresponding LogLevel. Used to convert a string log level from
// configuration to a strongly-typed LogLevel. Unknown strings map to Info.
func ParseLogLevelFromString(levelStr string) LogLevel {
	switch levelStr {
	case "LogLevelDebug":
		return LogLevelDebug
	case "LogLevelInfo":
		return LogLevelInfo
	case "LogLevelWarn":
		return LogLevelWarn
	case "LogLevelError":
		return LogLevelError
	case "LogLevelPanic":
		return LogLevelPanic
	case "LogLevelFatal":
		return LogLevelFatal
	default:
		return LogLevelInfo
	}
}
