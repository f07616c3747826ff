package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter = &NullWriter{}
	Info       *log.Logger
	Warn       *log.Logger
	Error      *log.Logger
	Debug      *log.Logger
	Trace      *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR
	case "warn", "warning":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning WARN", value)
	return WARN
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	initializeWith(ERROR, os.Stderr)
}

// Initialize enables every level up to and including logLevel. All log
// output goes to stderr so that command output on stdout stays clean.
func Initialize(logLevel LogLevel) {
	InitializeWithWriter(logLevel, os.Stderr)
}

func InitializeWithWriter(logLevel LogLevel, writer io.Writer) {
	initializeWith(logLevel, writer)
	Debug.Printf("Initialized loggers: '%s'", logLevel.String())
}

func initializeWith(logLevel LogLevel, writer io.Writer) {
	Error = newLogger(logLevel, ERROR, writer, "ERROR: ")
	Warn = newLogger(logLevel, WARN, writer, "WARN:  ")
	Info = newLogger(logLevel, INFO, writer, "INFO:  ")
	Debug = newLogger(logLevel, DEBUG, writer, "DEBUG: ")
	Trace = newLogger(logLevel, TRACE, writer, "TRACE: ")
}

func newLogger(enabled LogLevel, level LogLevel, writer io.Writer, prefix string) *log.Logger {
	if enabled >= level {
		return log.New(writer, prefix, logFlags)
	}
	return log.New(nullWriter, prefix, logFlags)
}
