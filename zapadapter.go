package aesgo

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to the Logger interface, keeping
// zap behind a thin boundary rather than a direct dependency sprinkled
// through the core.
type zapLogger struct {
	s *zap.SugaredLogger
}

// NewZapLogger wraps a *zap.SugaredLogger for use as a Config.Logger.
func NewZapLogger(s *zap.SugaredLogger) Logger {
	return zapLogger{s: s}
}

func (z zapLogger) Debugf(format string, args ...any) {
	z.s.Debugf(format, args...)
}

func (z zapLogger) Infof(format string, args ...any) {
	z.s.Infof(format, args...)
}
