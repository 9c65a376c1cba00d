package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, "WARN", LevelWarn.String())
}

func TestInit_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelInfo, &buf)
	defer Close()

	Debug("storage", "hidden %d", 1)
	Info("storage", "saved %d colors", 3)
	Error("share", errors.New("boom"), "encode failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "saved 3 colors")
	assert.Contains(t, out, "subsystem=storage")
	assert.Contains(t, out, "error=boom")
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pal.log")
	require.NoError(t, InitFile(LevelDebug, path))

	Debug("tui", "started")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}
