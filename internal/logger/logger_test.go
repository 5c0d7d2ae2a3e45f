package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		require.Equal(t, want, parseLevel(in), in)
	}
}

func TestFromZap(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromZap(nil))

	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))
	l.Debugw("flutterwave request completed", "path", "/payments", "status_code", 200)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "flutterwave request completed", entries[0].Message)
	require.Equal(t, "/payments", entries[0].ContextMap()["path"])
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := New("warn")
	require.NoError(t, err)
	require.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))
}
