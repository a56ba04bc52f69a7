// Package logging provides the Logger the XML encoder reports through.
//
// Encoding is synchronous and takes no context.Context, so loggers are not
// context aware. A Logger is fixed when the encoder is constructed.
package logging

import (
	"io"
	"log"
)

// Classification is the level of a log entry. It is prepended to the message
// by StandardLogger and attached as a field by ZapLogger.
type Classification string

const (
	// Warn marks caller mistakes the encoder tolerates, such as a duplicate
	// attribute name or two namespaces sharing a prefix.
	Warn Classification = "WARN"

	// Debug marks routine decisions, such as hoisting a namespace
	// declaration to the root element.
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(level Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that simply does not perform any logging.
// It is the encoder's default.
type Noop struct{}

// Logf discards the entry.
func (n Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that wraps the standard library
// logger, and delegates logging to its Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}

	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a StandardLogger writing entries prefixed with
// "XML " to writer.
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "XML ", log.LstdFlags),
	}
}
