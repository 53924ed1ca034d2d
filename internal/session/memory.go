package session

import (
	"sort"
	"time"
)

// MemoryHistory is an in-process HistoryStore used by tests and as the
// fallback when the database cannot be opened.
type MemoryHistory struct {
	entries map[string]HistoryEntry
	now     func() time.Time
}

// NewMemoryHistory returns an empty in-memory store.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{entries: make(map[string]HistoryEntry), now: time.Now}
}

// SetClock overrides the timestamp source, for deterministic tests.
func (m *MemoryHistory) SetClock(now func() time.Time) { m.now = now }

// Touch implements HistoryStore.
func (m *MemoryHistory) Touch(e HistoryEntry) error {
	if e.LastPlayed == 0 {
		e.LastPlayed = m.now().Unix()
	}
	m.entries[e.Path] = e
	return nil
}

// Recent implements HistoryStore.
func (m *MemoryHistory) Recent(limit int, exclude string) ([]HistoryEntry, error) {
	var out []HistoryEntry
	for _, e := range m.entries {
		if e.Path == exclude {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastPlayed != out[j].LastPlayed {
			return out[i].LastPlayed > out[j].LastPlayed
		}
		return out[i].Path < out[j].Path
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Evict implements HistoryStore.
func (m *MemoryHistory) Evict(capacity int) error {
	kept, err := m.Recent(capacity, "")
	if err != nil {
		return err
	}
	keep := make(map[string]bool, len(kept))
	for _, e := range kept {
		keep[e.Path] = true
	}
	for path := range m.entries {
		if !keep[path] {
			delete(m.entries, path)
		}
	}
	return nil
}

// Clear implements HistoryStore.
func (m *MemoryHistory) Clear() error {
	m.entries = make(map[string]HistoryEntry)
	return nil
}

// Close implements HistoryStore.
func (m *MemoryHistory) Close() error { return nil }
