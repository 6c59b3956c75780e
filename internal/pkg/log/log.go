package log

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

type logger struct {
	zap *otelzap.Logger
}

var global *otelzap.Logger

// SetupLogger builds the production zap logger. The level falls back to info
// when it cannot be parsed.
func SetupLogger(level ...string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if len(level) > 0 {
		if lvl, err := zapcore.ParseLevel(level[0]); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func Init(l *zap.Logger) {
	global = otelzap.New(l, otelzap.WithMinLevel(zap.InfoLevel))
}

// Setup returns an otelzap logger for handlers and middleware.
func Setup() *otelzap.Logger {
	if global == nil {
		Init(SetupLogger())
	}
	return global
}

func GetLogger() Logger {
	return &logger{zap: Setup()}
}

func (l *logger) Debug(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Debug(msg, fields(args)...)
}

func (l *logger) Info(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *logger) Error(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Error(msg, fields(args)...)
}

// fields accepts zap fields, errors, and loose values.
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zap.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
