package ui

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/logging"
	"github.com/xXJSONDeruloXx/Allium/internal/session"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
	"github.com/xXJSONDeruloXx/Allium/internal/view"
)

// Tab identifiers, in display order.
const (
	TabRecents = iota
	TabGames
	TabApps
	tabCount
)

var tabNames = [tabCount]string{"Recents", "Games", "Apps"}

// EntryTab is one launcher tab: a scrolling list of entries backed by a
// reload function so the tab can refresh when it regains focus.
type EntryTab struct {
	list    *view.List
	entries []Entry
	reload  func() []Entry
}

// NewEntryTab builds a tab over an entry source. The source is invoked
// once immediately and again on every Refresh.
func NewEntryTab(rect geom.Rect, reload func() []Entry) *EntryTab {
	t := &EntryTab{
		list:   view.NewList(rect, nil),
		reload: reload,
	}
	t.Refresh()
	return t
}

// Refresh re-runs the entry source, keeping the cursor on the same path
// when it survives the reload.
func (t *EntryTab) Refresh() {
	var keep string
	if e, ok := t.Selected(); ok {
		keep = e.Path
	}
	t.entries = t.reload()
	items := make([]string, len(t.entries))
	cursor := 0
	for i, e := range t.entries {
		items[i] = e.Name
		if keep != "" && e.Path == keep {
			cursor = i
		}
	}
	t.list.SetItems(items)
	t.list.SetCursor(cursor)
}

// Selected returns the entry under the cursor.
func (t *EntryTab) Selected() (Entry, bool) {
	i := t.list.Cursor()
	if i < 0 || i >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries exposes the current entry set for search ranking.
func (t *EntryTab) Entries() []Entry { return t.entries }

func (t *EntryTab) Cursor() int     { return t.list.Cursor() }
func (t *EntryTab) SetCursor(i int) { t.list.SetCursor(i) }

func (t *EntryTab) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	return t.list.Draw(s, styles)
}

func (t *EntryTab) ShouldDraw() bool { return t.list.ShouldDraw() }
func (t *EntryTab) SetShouldDraw()   { t.list.SetShouldDraw() }

func (t *EntryTab) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	return t.list.HandleKeyEvent(ev, bus, bubble)
}

func (t *EntryTab) Children() []view.View { return []view.View{t.list} }

func (t *EntryTab) BoundingBox(styles *stylesheet.Stylesheet) geom.Rect {
	return t.list.BoundingBox(styles)
}

func (t *EntryTab) SetPosition(p geom.Point) { t.list.SetPosition(p) }

// recentsReload adapts a history store into a tab entry source.
func recentsReload(history session.HistoryStore, limit int) func() []Entry {
	return func() []Entry {
		rows, err := history.Recent(limit, "")
		if err != nil {
			logging.Warnf("ui: recents: %v", err)
			return nil
		}
		entries := make([]Entry, len(rows))
		for i, row := range rows {
			entries[i] = entryFromHistory(row)
		}
		return entries
	}
}
