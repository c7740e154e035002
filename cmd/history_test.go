package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dontpressbutton/dontpress/internal/domain"
)

func withHistoryStore(t *testing.T, store *fakeStore) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer

	origStore := historyStoreFunc
	origWriter := historyOutputWriter
	historyStoreFunc = func() (domain.Repository, error) { return store, nil }
	historyOutputWriter = &buf
	t.Cleanup(func() {
		historyStoreFunc = origStore
		historyOutputWriter = origWriter
		historySession = ""
		historyKind = ""
		historyLimit = 0
	})
	return &buf
}

func TestHistoryListsEvents(t *testing.T) {
	buf := withHistoryStore(t, &fakeStore{events: sampleEvents()})

	runHistory(historyCmd, nil)

	out := buf.String()
	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "click")
	assert.Contains(t, out, "confirm-shown")
	assert.Contains(t, out, "warn")
}

func TestHistoryEmpty(t *testing.T) {
	buf := withHistoryStore(t, &fakeStore{})

	runHistory(historyCmd, nil)
	assert.Contains(t, buf.String(), "No events recorded")
}

func TestHistoryFiltersBySession(t *testing.T) {
	buf := withHistoryStore(t, &fakeStore{events: sampleEvents()})
	historySession = "s2"

	runHistory(historyCmd, nil)

	out := buf.String()
	assert.Contains(t, out, "s2")
	assert.NotContains(t, out, "accepted")
}

func TestHistoryFiltersByKind(t *testing.T) {
	buf := withHistoryStore(t, &fakeStore{events: sampleEvents()})
	historyKind = domain.KindAccepted

	runHistory(historyCmd, nil)

	out := buf.String()
	assert.Contains(t, out, "accepted")
	assert.NotContains(t, out, "confirm-shown")
}

func TestHistoryRejectsUnknownKind(t *testing.T) {
	buf := withHistoryStore(t, &fakeStore{events: sampleEvents()})
	historyKind = "bogus"

	runHistory(historyCmd, nil)
	assert.Empty(t, buf.String(), "no listing output on invalid kind")
}

func TestHistoryLimit(t *testing.T) {
	buf := withHistoryStore(t, &fakeStore{events: sampleEvents()})
	historyLimit = 1

	runHistory(historyCmd, nil)

	out := buf.String()
	assert.NotContains(t, out, "warn", "oldest event should be cut off")
	assert.Contains(t, out, "s2")
}

func TestShortSession(t *testing.T) {
	assert.Equal(t, "0f3a2b1c", shortSession("0f3a2b1c-dead-beef-0000-000000000000"))
	assert.Equal(t, "s1", shortSession("s1"))
}
