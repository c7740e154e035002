package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontpressbutton/dontpress/internal/config"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/storage/sqlite"
)

func TestNewForBackendTSV(t *testing.T) {
	store, err := NewForBackend("tsv", t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*FileStorage)
	assert.True(t, ok)
}

func TestNewForBackendSQLite(t *testing.T) {
	store, err := NewForBackend("sqlite", t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*sqlite.SQLiteStorage)
	assert.True(t, ok)
}

func TestNewForBackendUnknownFallsBackToTSV(t *testing.T) {
	store, err := NewForBackend("postgres", t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*FileStorage)
	assert.True(t, ok)
}

func TestNewFromConfigDisabledHistory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(t.TempDir(), "state"))
	t.Setenv("DONTPRESS_HISTORY_ENABLED", "false")
	config.Load()

	store, err := NewFromConfig()
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*NoopStorage)
	assert.True(t, ok)

	id, err := store.AppendEvent(domain.Event{Kind: domain.KindClick})
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestNewFromConfigUsesConfiguredBackend(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(t.TempDir(), "state"))
	t.Setenv("DONTPRESS_HISTORY_BACKEND", "sqlite")
	config.Load()

	store, err := NewFromConfig()
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*sqlite.SQLiteStorage)
	assert.True(t, ok)
}
