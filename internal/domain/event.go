// Package domain holds the press history model shared by storage backends.
package domain

import "time"

// Event kinds recorded during a press session.
const (
	// KindClick is a button press.
	KindClick = "click"
	// KindConfirmShown marks the click that triggered the confirmation.
	KindConfirmShown = "confirm-shown"
	// KindAccepted records an accepted confirmation.
	KindAccepted = "accepted"
	// KindDeclined records a declined confirmation.
	KindDeclined = "declined"
)

// Event is one recorded press-session event.
type Event struct {
	ID         string
	Session    string
	Kind       string
	ClickCount int
	Message    string
	Timestamp  string // RFC3339, UTC
}

// Filter narrows event listings. Zero values match everything.
type Filter struct {
	Session string
	Kind    string
	// Limit keeps only the most recent N events. 0 means no limit.
	Limit int
}

// ValidKind reports whether kind is one of the recorded event kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindClick, KindConfirmShown, KindAccepted, KindDeclined:
		return true
	}
	return false
}

// UTCNow returns the current time formatted for event timestamps.
func UTCNow() string {
	return time.Now().UTC().Format(time.RFC3339)
}
