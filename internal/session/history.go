package session

// HistoryEntry is one recently-launched game, keyed by content path.
type HistoryEntry struct {
	GameInfo
	LastPlayed int64
}

// DefaultHistoryCapacity bounds the switcher list.
const DefaultHistoryCapacity = 10

// HistoryStore is the narrow interface the switcher and recents views
// consume. Implementations are keyed by path: Touch inserts or refreshes,
// Recent returns newest-first.
type HistoryStore interface {
	// Touch inserts the entry or, when the path is already present,
	// replaces it and refreshes its timestamp.
	Touch(e HistoryEntry) error

	// Recent returns up to limit entries ordered most recent first,
	// skipping the entry whose path equals exclude.
	Recent(limit int, exclude string) ([]HistoryEntry, error)

	// Evict removes the oldest entries beyond capacity.
	Evict(capacity int) error

	// Clear removes every entry.
	Clear() error

	Close() error
}
