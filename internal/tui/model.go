// Package tui implements the interactive button screen. It is a thin
// presentation layer: every user intent is forwarded into the click gate
// and the view renders whatever the gate decided.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dontpressbutton/dontpress/internal/clickgate"
	"github.com/dontpressbutton/dontpress/internal/content"
	"github.com/dontpressbutton/dontpress/internal/domain"
	"github.com/dontpressbutton/dontpress/internal/errors"
	"github.com/dontpressbutton/dontpress/internal/logging"
	"github.com/google/uuid"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// flashExpiredMsg clears the transient warning after the flash duration.
// seq guards against an old tick clearing a newer flash.
type flashExpiredMsg struct {
	seq int
}

// Model is the bubbletea model for the press TUI.
type Model struct {
	gate    *clickgate.Gate
	doc     content.Document
	store   domain.Repository
	session string
	keys    keyMap
	handler *errors.TUIHandler

	flash         string
	flashSeq      int
	flashDuration time.Duration
	statusMessage string
	modalOpen     bool
	width         int
	height        int
}

// NewModel creates a press TUI model. The store may be a no-op repository
// when history is disabled; it must not be nil.
func NewModel(gate *clickgate.Gate, doc content.Document, store domain.Repository, flashDuration time.Duration) *Model {
	m := &Model{
		gate:          gate,
		doc:           doc,
		store:         store,
		session:       uuid.NewString(),
		keys:          defaultKeyMap(),
		flashDuration: flashDuration,
		width:         defaultWidth,
		height:        defaultHeight,
	}
	m.handler = errors.NewTUIHandler(func(msg errors.Message) {
		m.statusMessage = msg.Text
	})
	return m
}

// Session returns the session identifier recorded with history events.
func (m *Model) Session() string {
	return m.session
}

// Init initializes the TUI model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case flashExpiredMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, modal or not.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.modalOpen {
		return m.handleModalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Press):
		return m, m.press()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// handleModalKey processes keys while the confirmation modal is open.
// Focus stays trapped in the modal: anything that is not a decision key is
// ignored (except quitting, which is never trapped when focus trapping is
// disabled in the content document).
func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.confirm(true)
		return m, nil
	case key.Matches(msg, m.keys.No):
		m.confirm(false)
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		if m.doc.A11y.CloseOnEsc {
			m.confirm(false)
		}
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		if !m.doc.A11y.TrapFocusInModal {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// press registers one click with the gate, flashes the selected warning and
// opens the confirmation modal when the gate signals it.
func (m *Model) press() tea.Cmd {
	result := m.gate.RegisterClick()

	m.flash = result.Message
	m.flashSeq++
	seq := m.flashSeq

	m.record(domain.KindClick, result.ClickCount, result.Message)
	if result.ShowConfirmation {
		m.modalOpen = true
		m.record(domain.KindConfirmShown, result.ClickCount, "")
	}

	return tea.Tick(m.flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{seq: seq}
	})
}

// confirm resolves the open modal through the gate.
func (m *Model) confirm(accepted bool) {
	completed := m.gate.Confirm(accepted)
	m.modalOpen = false

	count := m.gate.State().ClickCount
	if accepted {
		m.record(domain.KindAccepted, count, "")
	} else {
		m.record(domain.KindDeclined, count, "")
	}

	if completed {
		m.handler.Success(m.doc.UIText.PaymentCompleted)
	}
}

// record appends a history event. Recording is best-effort: failures go to
// the log, never to the screen as errors.
func (m *Model) record(kind string, count int, message string) {
	_, err := m.store.AppendEvent(domain.Event{
		Session:    m.session,
		Kind:       kind,
		ClickCount: count,
		Message:    message,
	})
	if err != nil {
		logging.Warn("failed to record history event", "kind", kind, "error", fmt.Sprintf("%v", err))
	}
}
