package lapisdb

import (
	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

// Logger receives every outgoing SQL text before it reaches the backend,
// plus any diagnostics the builders emit.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zapLogger struct {
	l *zap.SugaredLogger
}

// NewLogger builds a zap-backed Logger for the given environment.
func NewLogger(env LogLevel) (Logger, error) {
	var cfg zap.Config
	switch env {
	case LogLevelDev:
		cfg = zap.NewDevelopmentConfig()
	case LogLevelProd:
		cfg = zap.NewProductionConfig()
	default:
		return nil, configErrorf("log level should be either LogLevelDev or LogLevelProd")
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{l: l.Sugar()}, nil
}

func (z *zapLogger) Debugf(format string, args ...any) {
	z.l.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	z.l.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	z.l.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	z.l.Errorf(format, args...)
}
