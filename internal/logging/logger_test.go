package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vmatgen/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.Config{Color: config.ColorNever}
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Color: config.ColorAlways, LogFile: filepath.Join(dir, "logs", "vmatgen.log")}
	l, err := NewLogger(&cfg)
	require.NoError(t, err)

	l.Warn("to %s", "file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[WARN] to file")
	assert.NotContains(t, string(b), "\x1b[", "file sink must stay uncolored")
}

func TestWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Info("a")
	l.Success("b")
	l.Error("c")
	l.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"2024-01-02 03:04:05 [INFO] a",
		"2024-01-02 03:04:05 [SUCCESS] b",
		"2024-01-02 03:04:05 [ERROR] c",
	}, lines)
}

func TestDebugWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, true)
	l.Debug("shown %d", 1)
	assert.Contains(t, buf.String(), "[DEBUG] shown 1")
}
