package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dontpressbutton/dontpress/internal/domain"
)

const (
	historyFileName = "history.tsv"
	lockDirName     = "history.lock"
	numFields       = 6
)

// FileStorage implements domain.Repository using an append-only TSV file.
type FileStorage struct {
	stateDir string
}

// NewFileStorage creates a TSV-backed history store under stateDir.
func NewFileStorage(stateDir string) (*FileStorage, error) {
	if strings.TrimSpace(stateDir) == "" {
		return nil, fmt.Errorf("file storage: state directory cannot be empty")
	}
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("file storage: create state directory: %w", err)
	}
	fs := &FileStorage{stateDir: stateDir}
	path := fs.historyFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte{}, 0644); err != nil {
			return nil, fmt.Errorf("file storage: create history file: %w", err)
		}
	}
	return fs, nil
}

func (fs *FileStorage) historyFile() string {
	return filepath.Join(fs.stateDir, historyFileName)
}

func (fs *FileStorage) lockDir() string {
	return filepath.Join(fs.stateDir, lockDirName)
}

// AppendEvent records an event and returns its assigned ID.
func (fs *FileStorage) AppendEvent(e domain.Event) (string, error) {
	if !domain.ValidKind(e.Kind) {
		return "", fmt.Errorf("file storage: invalid event kind %q", e.Kind)
	}
	if e.Timestamp == "" {
		e.Timestamp = domain.UTCNow()
	}

	var id string
	err := WithLock(fs.lockDir(), func() error {
		events, err := fs.readAll()
		if err != nil {
			return err
		}
		next := 1
		for _, existing := range events {
			if n, err := strconv.Atoi(existing.ID); err == nil && n >= next {
				next = n + 1
			}
		}
		id = strconv.Itoa(next)

		line := strings.Join([]string{
			id,
			e.Timestamp,
			e.Session,
			e.Kind,
			strconv.Itoa(e.ClickCount),
			escapeField(e.Message),
		}, "\t") + "\n"

		f, err := os.OpenFile(fs.historyFile(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open history file: %w", err)
		}
		defer f.Close()
		if _, err := f.WriteString(line); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("file storage: %w", err)
	}
	return id, nil
}

// ListEvents returns events matching the filter, oldest first.
func (fs *FileStorage) ListEvents(f domain.Filter) ([]domain.Event, error) {
	events, err := fs.readAll()
	if err != nil {
		return nil, fmt.Errorf("file storage: %w", err)
	}
	filtered := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if f.Session != "" && e.Session != f.Session {
			continue
		}
		if f.Kind != "" && e.Kind != f.Kind {
			continue
		}
		filtered = append(filtered, e)
	}
	if f.Limit > 0 && len(filtered) > f.Limit {
		filtered = filtered[len(filtered)-f.Limit:]
	}
	return filtered, nil
}

// Clear removes all recorded events.
func (fs *FileStorage) Clear() error {
	err := WithLock(fs.lockDir(), func() error {
		return os.WriteFile(fs.historyFile(), []byte{}, 0644)
	})
	if err != nil {
		return fmt.Errorf("file storage: clear: %w", err)
	}
	return nil
}

// Close is a no-op for file storage.
func (fs *FileStorage) Close() error {
	return nil
}

func (fs *FileStorage) readAll() ([]domain.Event, error) {
	data, err := os.ReadFile(fs.historyFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}
	var events []domain.Event
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		e, ok := parseLine(line)
		if !ok {
			// Skip malformed lines rather than failing the whole read.
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func parseLine(line string) (domain.Event, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < numFields {
		return domain.Event{}, false
	}
	count, err := strconv.Atoi(fields[4])
	if err != nil {
		return domain.Event{}, false
	}
	return domain.Event{
		ID:         fields[0],
		Timestamp:  fields[1],
		Session:    fields[2],
		Kind:       fields[3],
		ClickCount: count,
		Message:    unescapeField(fields[5]),
	}, true
}

// escapeField makes a message safe for one TSV field.
func escapeField(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

func unescapeField(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
