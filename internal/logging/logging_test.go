package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return Wrap(zap.New(core)), logs
}

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	l, _ := observed()
	ctx := l.WithContext(context.Background())

	assert.Same(t, l, FromContext(ctx))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, New(), FromContext(context.Background()))
	assert.Same(t, New(), FromContext(nil))
}

func TestWrap_NilUsesDefault(t *testing.T) {
	assert.Same(t, New(), Wrap(nil))
}

func TestLevelsAndFields(t *testing.T) {
	l, logs := observed()

	l.Debug("d")
	l.With(String("tag", "t")).Info("i", Int("n", 3), Duration("elapsed", time.Second))
	l.Warn("w", Float("ratio", 0.5))
	l.Error("e", Error(errors.New("bad")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "i", entries[1].Message)

	fields := entries[1].ContextMap()
	assert.Equal(t, "t", fields["tag"])
	assert.Equal(t, int64(3), fields["n"])
	assert.Equal(t, time.Second, fields["elapsed"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "bad", entries[3].ContextMap()["error"])
}
