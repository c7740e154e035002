package domain

// Repository is the press history store. History is observability only:
// recording failures must never surface as user-visible errors.
type Repository interface {
	// AppendEvent records an event and returns its assigned ID.
	AppendEvent(e Event) (string, error)
	// ListEvents returns events matching the filter, oldest first.
	ListEvents(f Filter) ([]Event, error)
	// Clear removes all recorded events.
	Clear() error
	// Close releases any resources held by the store.
	Close() error
}
