package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestParseLogLevel verifies mapping from strings to zapcore.Level and handling of unknown values.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for s, lvl := range cases {
		got, ok := ParseLogLevel(s)
		require.True(t, ok, s)
		require.Equal(t, lvl, got)
	}

	got, ok := ParseLogLevel("loud")
	require.False(t, ok)
	require.Equal(t, zapcore.InfoLevel, got)
}

func TestSetLoggerAndNamed(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	l := zap.NewNop().Sugar()
	SetLogger(l)
	require.Same(t, l, Logger())
	require.NotNil(t, Named("gear-1"))
}
