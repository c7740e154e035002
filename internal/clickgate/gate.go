// Package clickgate implements the click counter and payment confirmation gate.
package clickgate

import (
	"errors"
	"math/rand"
	"time"
)

// Phase identifies where the gate is in its lifecycle.
type Phase int

const (
	// PhaseCounting is the initial phase: clicks are counted and messages flashed.
	PhaseCounting Phase = iota
	// PhaseAwaitingConfirmation means the threshold was reached and a
	// confirmation decision is pending.
	PhaseAwaitingConfirmation
	// PhaseCompleted means the user accepted the confirmation. Terminal:
	// further clicks still count but never trigger confirmation again.
	PhaseCompleted
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseCounting:
		return "counting"
	case PhaseAwaitingConfirmation:
		return "awaiting-confirmation"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// State holds the mutable interaction state for one session.
// ClickCount never decreases; PaymentCompleted never flips back to false.
type State struct {
	ClickCount       int
	PaymentCompleted bool
}

// Result describes the outcome of a single registered click.
type Result struct {
	// Message is the warning selected for transient display.
	Message string
	// ClickCount is the counter value after this click.
	ClickCount int
	// ShowConfirmation is true only on the click where the counter first
	// reaches the threshold and payment has not been completed.
	ShowConfirmation bool
}

var (
	// ErrInvalidThreshold indicates a non-positive confirmation threshold.
	ErrInvalidThreshold = errors.New("clickgate: threshold must be positive")
	// ErrNoMessages indicates an empty message list.
	ErrNoMessages = errors.New("clickgate: at least one message is required")
)

// Gate tracks clicks against a fixed threshold and gates a one-time
// payment confirmation. It is not safe for concurrent use; the TUI event
// loop is the single caller.
type Gate struct {
	state     State
	phase     Phase
	threshold int
	messages  []string
	intn      func(n int) int
}

// Option configures a Gate.
type Option func(*Gate)

// WithRand sets the random source used for message selection.
// Used by tests to make selection deterministic.
func WithRand(r *rand.Rand) Option {
	return func(g *Gate) {
		g.intn = r.Intn
	}
}

// New creates a gate with the given threshold and message list.
// The threshold is fixed for the lifetime of the gate.
func New(threshold int, messages []string, opts ...Option) (*Gate, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}
	if len(messages) == 0 {
		return nil, ErrNoMessages
	}
	msgs := make([]string, len(messages))
	copy(msgs, messages)
	g := &Gate{
		phase:     PhaseCounting,
		threshold: threshold,
		messages:  msgs,
		intn:      rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// RegisterClick increments the counter, picks a message uniformly at random
// (repeats allowed) and reports whether the confirmation should be shown.
// The confirmation is signaled exactly once: on the click where the counter
// first equals the threshold, and only if payment was never completed.
func (g *Gate) RegisterClick() Result {
	g.state.ClickCount++
	result := Result{
		Message:    g.messages[g.intn(len(g.messages))],
		ClickCount: g.state.ClickCount,
	}
	if g.state.ClickCount == g.threshold && !g.state.PaymentCompleted {
		g.phase = PhaseAwaitingConfirmation
		result.ShowConfirmation = true
	}
	return result
}

// Confirm resolves a pending confirmation. Accepting marks the payment as
// completed and moves the gate to its terminal phase; declining returns the
// gate to counting. Because the counter is already past the only threshold,
// declining means no confirmation will trigger again this session.
//
// Calling Confirm while no confirmation is pending is ignored.
// The returned bool is true only when the call completed the payment.
func (g *Gate) Confirm(accepted bool) bool {
	if g.phase != PhaseAwaitingConfirmation {
		return false
	}
	if accepted {
		g.state.PaymentCompleted = true
		g.phase = PhaseCompleted
		return true
	}
	g.phase = PhaseCounting
	return false
}

// Phase returns the current lifecycle phase.
func (g *Gate) Phase() Phase {
	return g.phase
}

// State returns a copy of the interaction state.
func (g *Gate) State() State {
	return g.state
}

// Threshold returns the configured confirmation threshold.
func (g *Gate) Threshold() int {
	return g.threshold
}
