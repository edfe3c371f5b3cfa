package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw   string
		want  zerolog.Level
		found bool
	}{
		{raw: "", want: zerolog.InfoLevel, found: false},
		{raw: "trace", want: zerolog.TraceLevel, found: true},
		{raw: " DEBUG ", want: zerolog.DebugLevel, found: true},
		{raw: "warning", want: zerolog.WarnLevel, found: true},
		{raw: "error", want: zerolog.ErrorLevel, found: true},
		{raw: "off", want: zerolog.Disabled, found: true},
		{raw: "loud", want: zerolog.InfoLevel, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestParseBool(t *testing.T) {
	v, ok := ParseBool("true")
	assert.True(t, v)
	assert.True(t, ok)

	_, ok = ParseBool("")
	assert.False(t, ok)

	_, ok = ParseBool("maybe")
	assert.False(t, ok)
}

func TestNew_RespectsLevelOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")

	var buf bytes.Buffer
	logger := New("test", &buf)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "app=test")
}
