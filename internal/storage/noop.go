package storage

import "github.com/dontpressbutton/dontpress/internal/domain"

// NoopStorage discards all events. Used when history is disabled so callers
// never need a nil check.
type NoopStorage struct{}

// NewNoopStorage creates a store that records nothing.
func NewNoopStorage() *NoopStorage {
	return &NoopStorage{}
}

func (n *NoopStorage) AppendEvent(e domain.Event) (string, error) {
	return "", nil
}

func (n *NoopStorage) ListEvents(f domain.Filter) ([]domain.Event, error) {
	return nil, nil
}

func (n *NoopStorage) Clear() error {
	return nil
}

func (n *NoopStorage) Close() error {
	return nil
}
