package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLevelIsQuiet(t *testing.T) {
	// Runs before any test calls SetupLogger
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	var buf bytes.Buffer
	logger := GetLogger("resolver").Output(&buf)
	logger.Debug().Msg("resolving")
	logger.Trace().Msg("presence match")
	assert.Empty(t, buf.String())
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()
			t.Cleanup(xdg.Reload)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "assetsel", "assetsel.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	assert.Equal(t, filepath.Join("/custom/state", "assetsel", "assetsel.log"), getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	logger := GetLogger("patterns").Output(&buf)
	logger.Debug().Msg("compiled")

	out := buf.String()
	assert.True(t, strings.Contains(out, `"component":"patterns"`), out)
	assert.True(t, strings.Contains(out, `"message":"compiled"`), out)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	logger := zerolog.New(&buf)
	done := LogOperationStart(logger, "resolve")
	done()

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"operation":"resolve"`))
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"duration"`)
}
