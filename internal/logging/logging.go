package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

type loggerCtxKey struct{}

type Logger struct {
	log *zap.Logger
}

var (
	logOnce      sync.Once
	cachedLogger *Logger
)

func inProduction() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

func defaultLogger() *zap.Logger {
	var logCfg zap.Config
	if inProduction() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}

// New returns the process wide logger, building it on first use.
func New() *Logger {
	logOnce.Do(func() {
		cachedLogger = &Logger{log: defaultLogger()}
	})
	return cachedLogger
}

// Wrap uses an existing zap logger, e.g. one built on an observer core.
func Wrap(z *zap.Logger) *Logger {
	if z == nil {
		return New()
	}
	return &Logger{log: z}
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return New()
	}

	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok && l != nil {
		return l
	}

	return New()
}

func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.log.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.log.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.log.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.log.Error(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.log.Sync()
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.log.With(fields...)}
}
