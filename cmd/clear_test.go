package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dontpressbutton/dontpress/internal/domain"
)

func withClearStore(t *testing.T, store *fakeStore) {
	t.Helper()

	origStore := clearStoreFunc
	origConfirm := clearConfirmFunc
	clearStoreFunc = func() (domain.Repository, error) { return store, nil }
	t.Cleanup(func() {
		clearStoreFunc = origStore
		clearConfirmFunc = origConfirm
		clearForce = false
	})
}

func TestClearForced(t *testing.T) {
	store := &fakeStore{events: sampleEvents()}
	withClearStore(t, store)
	clearForce = true

	runClear(clearCmd, nil)

	assert.True(t, store.cleared)
	assert.True(t, store.closed)
}

func TestClearConfirmed(t *testing.T) {
	store := &fakeStore{}
	withClearStore(t, store)
	clearConfirmFunc = func() bool { return true }

	runClear(clearCmd, nil)
	assert.True(t, store.cleared)
}

func TestClearAborted(t *testing.T) {
	store := &fakeStore{}
	withClearStore(t, store)
	clearConfirmFunc = func() bool { return false }

	runClear(clearCmd, nil)
	assert.False(t, store.cleared)
}
