package clickgate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T, threshold int, messages []string) *Gate {
	t.Helper()
	gate, err := New(threshold, messages, WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	return gate
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		messages  []string
		wantErr   error
	}{
		{"zero threshold", 0, []string{"a"}, ErrInvalidThreshold},
		{"negative threshold", -3, []string{"a"}, ErrInvalidThreshold},
		{"no messages", 10, nil, ErrNoMessages},
		{"valid", 1, []string{"a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, err := New(tt.threshold, tt.messages)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, gate)
		})
	}
}

func TestConfirmationNeverSignaledBelowThreshold(t *testing.T) {
	gate := newTestGate(t, 10, []string{"A", "B"})

	for i := 1; i < 10; i++ {
		result := gate.RegisterClick()
		assert.False(t, result.ShowConfirmation, "click %d must not signal confirmation", i)
		assert.Equal(t, i, result.ClickCount)
		assert.Equal(t, PhaseCounting, gate.Phase())
	}
	assert.Equal(t, 9, gate.State().ClickCount)
}

func TestConfirmationSignaledExactlyAtThreshold(t *testing.T) {
	gate := newTestGate(t, 10, []string{"A", "B"})

	for i := 0; i < 9; i++ {
		gate.RegisterClick()
	}
	result := gate.RegisterClick()
	require.True(t, result.ShowConfirmation)
	assert.Equal(t, 10, result.ClickCount)
	assert.Equal(t, PhaseAwaitingConfirmation, gate.Phase())
}

func TestAcceptCompletesPaymentAndStaysTerminal(t *testing.T) {
	gate := newTestGate(t, 10, []string{"A", "B"})

	for i := 0; i < 10; i++ {
		gate.RegisterClick()
	}
	require.Equal(t, PhaseAwaitingConfirmation, gate.Phase())

	completed := gate.Confirm(true)
	require.True(t, completed)
	assert.True(t, gate.State().PaymentCompleted)
	assert.Equal(t, PhaseCompleted, gate.Phase())

	for i := 0; i < 5; i++ {
		result := gate.RegisterClick()
		assert.False(t, result.ShowConfirmation)
	}
	assert.Equal(t, 15, gate.State().ClickCount)
	assert.Equal(t, PhaseCompleted, gate.Phase())
	assert.True(t, gate.State().PaymentCompleted)
}

func TestDeclineReturnsToCountingWithoutRetrigger(t *testing.T) {
	gate := newTestGate(t, 5, []string{"A"})

	for i := 0; i < 5; i++ {
		gate.RegisterClick()
	}
	require.Equal(t, PhaseAwaitingConfirmation, gate.Phase())

	completed := gate.Confirm(false)
	require.False(t, completed)
	assert.False(t, gate.State().PaymentCompleted)
	assert.Equal(t, PhaseCounting, gate.Phase())

	// The counter is already past the only threshold, so no amount of
	// further clicking triggers the confirmation again.
	for i := 0; i < 20; i++ {
		result := gate.RegisterClick()
		assert.False(t, result.ShowConfirmation)
	}
	assert.Equal(t, 25, gate.State().ClickCount)
}

func TestConfirmWithoutPendingConfirmationIsIgnored(t *testing.T) {
	gate := newTestGate(t, 10, []string{"A"})

	assert.False(t, gate.Confirm(true))
	assert.False(t, gate.State().PaymentCompleted)
	assert.Equal(t, PhaseCounting, gate.Phase())

	gate.RegisterClick()
	assert.False(t, gate.Confirm(false))
	assert.Equal(t, 1, gate.State().ClickCount)
}

func TestConfirmAfterCompletedIsIgnored(t *testing.T) {
	gate := newTestGate(t, 1, []string{"A"})

	gate.RegisterClick()
	require.True(t, gate.Confirm(true))

	assert.False(t, gate.Confirm(true))
	assert.False(t, gate.Confirm(false))
	assert.Equal(t, PhaseCompleted, gate.Phase())
	assert.True(t, gate.State().PaymentCompleted)
}

func TestClickCountIsMonotonic(t *testing.T) {
	gate := newTestGate(t, 3, []string{"A", "B", "C"})

	previous := 0
	for i := 0; i < 50; i++ {
		result := gate.RegisterClick()
		require.Greater(t, result.ClickCount, previous)
		previous = result.ClickCount
		if result.ShowConfirmation {
			gate.Confirm(false)
		}
	}
	assert.Equal(t, 50, gate.State().ClickCount)
}

func TestMessageSelectionIsRoughlyUniform(t *testing.T) {
	messages := []string{"A", "B", "C"}
	gate := newTestGate(t, math.MaxInt, messages)

	const samples = 3000
	counts := make(map[string]int)
	for i := 0; i < samples; i++ {
		result := gate.RegisterClick()
		counts[result.Message]++
	}

	expected := float64(samples) / float64(len(messages))
	for _, msg := range messages {
		got := float64(counts[msg])
		assert.InDelta(t, expected, got, expected*0.15, "message %q frequency out of tolerance", msg)
	}
}

func TestResultCarriesConfiguredMessage(t *testing.T) {
	gate := newTestGate(t, 10, []string{"only"})

	result := gate.RegisterClick()
	assert.Equal(t, "only", result.Message)
}
