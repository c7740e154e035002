package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontpressbutton/dontpress/internal/config"
)

func TestInitDisabledReturnsNoop(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)

	_, isNoop := logger.(noopLogger)
	assert.True(t, isNoop)
	assert.NoError(t, logger.Shutdown())
}

func TestInitWritesJSONEntries(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("DONTPRESS_STATE_DIR", "")
	setupGlobalConfig(t)

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "test"
	logger, err := Init(cfg)
	require.NoError(t, err)

	logger.Info("press registered", "count", 3)
	logger.Debug("flash shown")
	require.NoError(t, logger.Shutdown())

	impl, ok := logger.(*loggerImpl)
	require.True(t, ok)
	data, err := os.ReadFile(impl.filePath())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "press registered", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "test", entry["command"])
}

func TestWithAddsBaseFields(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	setupGlobalConfig(t)

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Command = "test"
	logger, err := Init(cfg)
	require.NoError(t, err)
	defer logger.Shutdown()

	child := logger.With("session", "abc")
	child.Info("clicked")

	impl, ok := logger.(*loggerImpl)
	require.True(t, ok)
	data, err := os.ReadFile(impl.filePath())
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "abc", entry["session"])
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "dontpress_"+time.Now().Format("20060102_150405")+"_"+string(rune('a'+i))+".log")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0600))
		// Distinct mtimes so rotation ordering is deterministic.
		older := time.Now().Add(time.Duration(i-5) * time.Minute)
		require.NoError(t, os.Chtimes(name, older, older))
	}
	// Unrelated files are never rotated away.
	keep := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("x"), 0600))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	logs := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".log") {
			logs++
		}
	}
	assert.Equal(t, 2, logs)
	_, err = os.Stat(keep)
	assert.NoError(t, err)
}

// setupGlobalConfig reloads the global config so LogDir picks up the
// isolated XDG state directory.
func setupGlobalConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	config.Load()
}
