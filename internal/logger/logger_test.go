package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, level)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	assert.True(t, NewLogger(true).Core().Enabled(zapcore.DebugLevel))
	assert.False(t, NewLogger(false).Core().Enabled(zapcore.DebugLevel))
}
