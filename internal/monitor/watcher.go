// Package monitor watches the session record file so the launcher notices
// when a game starts or exits behind its back: the record appearing or
// disappearing is the only signal a spawned emulator leaves.
package monitor

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/session"
)

// Event conveys the freshly loaded session record, or an error from the
// poll. Record is nil when no game is running.
type Event struct {
	Record *session.GameInfo
	Err    error
}

// Watcher polls the record file at a fixed interval and publishes an event
// whenever it changes.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// fingerprint identifies one on-disk state of the record file.
type fingerprint struct {
	exists  bool
	size    int64
	modTime time.Time
}

func stamp(path string) fingerprint {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}
	}
	return fingerprint{exists: true, size: info.Size(), modTime: info.ModTime()}
}

// NewWatcher creates a watcher that polls the record path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of record change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current tick; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	last := stamp(w.path)

	emit := func() bool {
		record, err := session.Load(w.path)
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Record: record, Err: err}:
			return true
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			current := stamp(w.path)
			if current == last {
				continue
			}
			last = current
			if !emit() {
				return
			}
		}
	}
}
