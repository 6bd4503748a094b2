package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := map[string]struct {
		verbosity int
		want      zerolog.Level
	}{
		"quiet":   {verbosity: 0, want: zerolog.WarnLevel},
		"info":    {verbosity: 1, want: zerolog.InfoLevel},
		"debug":   {verbosity: 2, want: zerolog.DebugLevel},
		"trace":   {verbosity: 3, want: zerolog.TraceLevel},
		"extreme": {verbosity: 9, want: zerolog.TraceLevel},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(tt.verbosity, &buf)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
	SetupLogger(0, &bytes.Buffer{})
}

func TestGetLoggerTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(1, &buf)
	defer SetupLogger(0, &bytes.Buffer{})

	logger := GetLogger("input")
	logger.Info().Msg("decoded")
	assert.Contains(t, buf.String(), "component=input")
	assert.Contains(t, buf.String(), "decoded")
}
