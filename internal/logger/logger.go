package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled diagnostics. Result lines meant for the user are
// printed on stdout by the caller, so the default output here is stderr.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	loggers map[LogLevel]*log.Logger
}

var (
	globalMu     sync.Mutex
	globalLogger *Logger
)

// New creates a logger writing to output at the given level
func New(level LogLevel, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	l := &Logger{level: level, loggers: make(map[LogLevel]*log.Logger, 4)}
	for _, lvl := range []LogLevel{DEBUG, INFO, WARNING, ERROR} {
		l.loggers[lvl] = log.New(output, fmt.Sprintf("[%s] ", lvl), log.LstdFlags)
	}
	return l
}

// Init replaces the global logger
func Init(level LogLevel, output io.Writer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = New(level, output)
}

// ParseLogLevel parses a string log level, falling back to INFO
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARNING", "WARN":
		return WARNING
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// GetLogger returns the global logger instance
func GetLogger() *Logger {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = New(INFO, os.Stderr)
	}
	return globalLogger
}

// SetLevel changes the log level of the logger
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Level returns the current log level
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	if l.Level() > level {
		return
	}
	l.loggers[level].Printf(format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) { l.logf(DEBUG, format, v...) }

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) { l.logf(INFO, format, v...) }

// Warning logs a warning message
func (l *Logger) Warning(format string, v ...interface{}) { l.logf(WARNING, format, v...) }

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) { l.logf(ERROR, format, v...) }

// Global convenience functions
func Debug(format string, v ...interface{}) {
	GetLogger().Debug(format, v...)
}

func Info(format string, v ...interface{}) {
	GetLogger().Info(format, v...)
}

func Warning(format string, v ...interface{}) {
	GetLogger().Warning(format, v...)
}

func Error(format string, v ...interface{}) {
	GetLogger().Error(format, v...)
}

// IsDebugEnabled returns true if debug logging is enabled
func IsDebugEnabled() bool {
	return GetLogger().Level() <= DEBUG
}
