package testrail

import "go.uber.org/zap"

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. Implement this interface to integrate with your logging library
// and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// ZapLogger adapts a [zap.SugaredLogger] to the [RequestLogger] interface so
// zap-based applications can plug their logger straight into the client.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps the given sugared logger. A nil logger yields an adapter
// that discards everything, matching [NoopLogger] behaviour.
func NewZapLogger(sugar *zap.SugaredLogger) *ZapLogger {
	return &ZapLogger{sugar: sugar}
}

func (l *ZapLogger) Errorf(format string, v ...any) {
	if l.sugar != nil {
		l.sugar.Errorf(format, v...)
	}
}

func (l *ZapLogger) Warnf(format string, v ...any) {
	if l.sugar != nil {
		l.sugar.Warnf(format, v...)
	}
}

func (l *ZapLogger) Debugf(format string, v ...any) {
	if l.sugar != nil {
		l.sugar.Debugf(format, v...)
	}
}
