package logging

import (
	"go.uber.org/zap"
)

// ZapLogger is a Logger implementation that delegates to a zap logger. Warn
// entries are logged at zap's warn level, everything else at debug.
type ZapLogger struct {
	Logger *zap.Logger
}

// NewZapLogger returns a ZapLogger writing to l.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{Logger: l}
}

// Logf logs the formatted message with the classification attached as a
// field.
func (z ZapLogger) Logf(classification Classification, format string, v ...interface{}) {
	s := z.Logger.Sugar()
	switch classification {
	case Warn:
		s.With(zap.String("classification", string(classification))).Warnf(format, v...)
	default:
		s.With(zap.String("classification", string(classification))).Debugf(format, v...)
	}
}
