package monitor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/session"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed unexpectedly")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for watcher event")
		return Event{}
	}
}

func TestWatcherReportsRecordAppearing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_game.json")
	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	info := session.GameInfo{Name: "Metroid", Path: "/roms/NES/Metroid.nes", HasMenu: true}
	if err := info.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	ev := waitEvent(t, w)
	if ev.Err != nil {
		t.Fatalf("expected clean event, got error %v", ev.Err)
	}
	if ev.Record == nil || ev.Record.Path != info.Path {
		t.Fatalf("expected record for %s, got %+v", info.Path, ev.Record)
	}
}

func TestWatcherReportsRecordRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_game.json")
	info := session.GameInfo{Name: "Metroid", Path: "/roms/NES/Metroid.nes", HasMenu: true}
	if err := info.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := session.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	ev := waitEvent(t, w)
	if ev.Err != nil {
		t.Fatalf("expected clean event, got error %v", ev.Err)
	}
	if ev.Record != nil {
		t.Fatalf("expected nil record after removal, got %+v", ev.Record)
	}
}

func TestWatcherStaysQuietWhileUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "current_game.json")
	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case ev := <-w.Events():
		t.Fatalf("expected no event for an absent unchanged record, got %+v", ev)
	case <-time.After(100 * time.Millisecond):
	}
}
