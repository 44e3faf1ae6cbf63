// Package log is the process-wide structured logger.
package log

import (
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = newLogger("minpai")

func newLogger(prefix string) *log.Logger {
	l := log.New(os.Stdout)
	l.SetPrefix(prefix)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	return l
}

// InitLog replaces the default logger. Unknown levels fall back to info.
func InitLog(appName string, logLevel string) {
	logger = newLogger(appName)
	logger.SetReportCaller(true)
	// Skip this package's wrappers when reporting the caller.
	logger.SetCallerOffset(1)
	SetLevel(logLevel)
}

// SetLevel changes the level of the current logger.
func SetLevel(logLevel string) {
	switch strings.ToLower(logLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Logger exposes the underlying logger for libraries that accept one.
func Logger() *log.Logger {
	return logger
}

func Fatal(format string, args ...any) {
	logger.Fatalf(format, args...)
}

func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}

// DebugEnabled reports whether debug records are emitted, so callers can skip
// building expensive arguments.
func DebugEnabled() bool {
	return logger.GetLevel() <= log.DebugLevel
}
