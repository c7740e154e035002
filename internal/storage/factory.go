// Package storage provides press history backend selection and implementations.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dontpressbutton/dontpress/internal/colors"
	"github.com/dontpressbutton/dontpress/internal/config"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/storage/sqlite"
)

const (
	// BackendTSV selects file-based TSV storage.
	BackendTSV = "tsv"
	// BackendSQLite selects SQLite-backed storage.
	BackendSQLite = "sqlite"

	historyDBFileName = "history.db"
)

var (
	_ domain.Repository = (*FileStorage)(nil)
	_ domain.Repository = (*NoopStorage)(nil)
)

// NewFromConfig creates a history store based on the loaded configuration.
// When history is disabled a no-op store is returned.
func NewFromConfig() (domain.Repository, error) {
	if !config.GetBool("history_enabled", true) {
		return NewNoopStorage(), nil
	}
	backend := config.Get("history_backend", BackendTSV)
	return NewForBackend(backend, config.Get("state_dir", ""))
}

// NewForBackend creates a history store for the provided backend name.
// A SQLite initialization failure falls back to TSV with a warning.
func NewForBackend(backend, stateDir string) (domain.Repository, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendTSV:
		return NewFileStorage(stateDir)
	case BackendSQLite:
		dbPath := filepath.Join(stateDir, historyDBFileName)
		sqliteStorage, err := sqlite.NewSQLiteStorage(dbPath)
		if err != nil {
			colors.Warning(fmt.Sprintf("failed to initialize sqlite backend, falling back to tsv: %v", err))
			return NewFileStorage(stateDir)
		}
		return sqliteStorage, nil
	default:
		colors.Warning(fmt.Sprintf("unknown history backend '%s', falling back to tsv", backend))
		return NewFileStorage(stateDir)
	}
}
