package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muratoffalex/ytgrab/internal/config"
)

func TestNewLogrusLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytgrab.log")
	l := NewLogrusLogger(&config.LoggingConfig{
		LogLevel:    "INFO",
		WriteInFile: true,
		FilePath:    path,
	})

	l.WithFields(Fields{"op": "video", "url": "https://example/video"}).Info("Download finished")
	l.Debug("hidden at info level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Download finished")
	assert.Contains(t, string(data), "op=video")
	assert.Contains(t, string(data), "url=https://example/video")
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewLogrusLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytgrab.log")
	l := NewLogrusLogger(&config.LoggingConfig{
		LogLevel:    "verbose",
		WriteInFile: true,
		FilePath:    path,
	})

	l.Info("visible at info")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible at info")
}

func TestNewLogrusLogger_CreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "ytgrab.log")
	l := NewLogrusLogger(&config.LoggingConfig{
		LogLevel:    "debug",
		WriteInFile: true,
		FilePath:    path,
	})

	l.WithField("op_id", "0192").Debug("Probing media")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=debug")
	assert.Contains(t, string(data), "op_id=0192")
	assert.NotContains(t, string(data), "\x1b[")
}
