// Package ui assembles the launcher screen: the tab row over recents,
// games and apps, the search overlay with its result list, the quick-resume
// switcher and the toast line. The App composite is the root of the view
// tree and the place bubbled commands stop.
package ui

import (
	"fmt"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/handoff"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/logging"
	"github.com/xXJSONDeruloXx/Allium/internal/logging/events"
	"github.com/xXJSONDeruloXx/Allium/internal/session"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
	"github.com/xXJSONDeruloXx/Allium/internal/view"
)

// Options wires the launcher root to its collaborators.
type Options struct {
	Rect          geom.Rect
	Styles        *stylesheet.Stylesheet
	History       session.HistoryStore
	Machine       *handoff.Machine
	RecordPath    string
	StatePath     string
	ScreenshotDir string
	RomsDir       string
	AppsDir       string

	// Tabs overrides the default entry sources, keyed by tab index.
	// Absent entries fall back to the directory scanners.
	Tabs map[int]func() []Entry
}

// App is the launcher root view.
type App struct {
	rect      geom.Rect
	styles    *stylesheet.Stylesheet
	history   session.HistoryStore
	machine   *handoff.Machine
	record    string
	statePath string
	shots     string

	tabLabels [tabCount]*view.Label
	tabRow    *view.Row
	tabs      [tabCount]*EntryTab
	hints     *view.Row
	selected  int

	clock     *view.Label
	clockText string

	search    *view.Search
	results   *Results
	switcher  *Switcher
	toast     *view.Toast
	lastQuery string

	dirty bool
}

// NewApp builds the launcher tree and restores the persisted tab and
// cursor positions.
func NewApp(opts Options) *App {
	styles := opts.Styles
	if styles == nil {
		styles = stylesheet.Default()
	}
	a := &App{
		rect:      opts.Rect,
		styles:    styles,
		history:   opts.History,
		machine:   opts.Machine,
		record:    opts.RecordPath,
		statePath: opts.StatePath,
		shots:     opts.ScreenshotDir,
		search:    view.NewSearch(opts.Rect),
		toast: view.NewToast(geom.Point{
			X: opts.Rect.X + opts.Rect.W/2,
			Y: opts.Rect.Bottom() - styles.Padding - styles.UIFontSize,
		}),
		dirty: true,
	}

	labels := make([]view.View, tabCount)
	for i := range a.tabLabels {
		l := view.NewLabel(geom.Zero(), tabNames[i], geom.AlignLeft)
		l.SetFontSize(styles.TabFontSize())
		a.tabLabels[i] = l
		labels[i] = l
	}
	a.tabRow = view.NewRow(
		geom.Point{X: opts.Rect.X + styles.Padding, Y: opts.Rect.Y + styles.Padding},
		labels, geom.AlignLeft, styles.ItemSpacing*2,
	)

	a.hints = view.NewRow(
		geom.Point{
			X: opts.Rect.Right() - styles.Padding,
			Y: opts.Rect.Bottom() - styles.Padding - styles.ButtonDiameter,
		},
		[]view.View{
			view.NewButtonHint(geom.Zero(), input.KeySelect, "Resume"),
			view.NewButtonHint(geom.Zero(), input.KeyY, "Search"),
			view.NewButtonHint(geom.Zero(), input.KeyA, "Start"),
		},
		geom.AlignRight, styles.ItemSpacing*2,
	)

	if styles.ShowClock {
		a.clock = view.NewLabel(
			geom.Point{X: opts.Rect.Right() - styles.Padding, Y: opts.Rect.Y + styles.Padding},
			"", geom.AlignRight,
		)
		a.clock.SetFontSize(styles.TabFontSize())
	}

	content := a.contentRect()
	sources := [tabCount]func() []Entry{
		recentsReload(a.history, session.DefaultHistoryCapacity),
		func() []Entry { return ScanGames(opts.RomsDir) },
		func() []Entry { return ScanApps(opts.AppsDir) },
	}
	for i, override := range opts.Tabs {
		if i >= 0 && i < tabCount && override != nil {
			sources[i] = override
		}
	}
	for i := range a.tabs {
		a.tabs[i] = NewEntryTab(content, sources[i])
	}

	st := loadState(a.statePath)
	a.selected = st.Tab
	for i, c := range st.Cursors {
		a.tabs[i].SetCursor(c)
	}
	a.restyleTabs()
	return a
}

func (a *App) contentRect() geom.Rect {
	top := a.styles.Padding*2 + a.styles.UIFontSize
	bottom := a.styles.Padding*2 + a.styles.ButtonDiameter
	return geom.NewRect(
		a.rect.X+a.styles.Padding,
		a.rect.Y+top,
		a.rect.W-2*a.styles.Padding,
		a.rect.H-top-bottom,
	)
}

func (a *App) restyleTabs() {
	for i, l := range a.tabLabels {
		if i == a.selected {
			l.SetColor(a.styles.TabSelected)
		} else {
			l.SetColor(a.styles.Tab)
		}
	}
}

// Selected returns the active tab index.
func (a *App) Selected() int { return a.selected }

// Tab returns the tab at index i.
func (a *App) Tab(i int) *EntryTab { return a.tabs[i] }

// Results returns the open search result view, or nil.
func (a *App) Results() *Results { return a.results }

// SearchActive reports whether the keyboard overlay owns input.
func (a *App) SearchActive() bool { return a.search.Active() }

// SwitcherOpen reports whether the quick-resume carousel is up.
func (a *App) SwitcherOpen() bool { return a.switcher != nil }

// SaveState persists the tab selection and cursors.
func (a *App) SaveState() error {
	st := launcherState{Tab: a.selected}
	for i, t := range a.tabs {
		st.Cursors[i] = t.Cursor()
	}
	return saveState(a.statePath, st)
}

// ShowToast puts a transient message on the toast line.
func (a *App) ShowToast(text string, d time.Duration, now time.Time) {
	events.UI.Toast(text)
	a.toast.Show(text, d, now)
}

// Tick advances time-driven state: the clock text and toast expiry.
func (a *App) Tick(now time.Time) {
	if a.clock != nil {
		if text := now.Format("15:04"); text != a.clockText {
			a.clockText = text
			a.clock.SetText(text)
		}
	}
	a.toast.Tick(now)
}

// StartSearch opens the keyboard overlay, pre-filled with the previous
// query when refining from the result view.
func (a *App) StartSearch() {
	events.UI.SearchOpen()
	if a.results != nil {
		a.search.ActivateWithValue(a.lastQuery)
	} else {
		a.search.Activate()
	}
	a.search.SetShouldDraw()
}

// OpenSwitcher raises the quick-resume carousel over the recents.
func (a *App) OpenSwitcher() {
	entries := recentsReload(a.history, session.DefaultHistoryCapacity)()
	events.UI.SwitcherOpen(len(entries))
	a.switcher = NewSwitcher(a.rect, entries, a.shots)
}

func (a *App) closeSwitcher() {
	a.switcher = nil
	a.refreshBase()
}

func (a *App) openResults(query string) {
	events.UI.SearchSubmit(query)
	a.lastQuery = query
	a.results = NewResults(a.contentRect(), query, a.tabs[TabGames].Entries())
	a.refreshBase()
}

func (a *App) closeResults() {
	events.UI.SearchClose()
	a.results = nil
	a.refreshBase()
}

// refreshBase repaints everything under a dismissed overlay.
func (a *App) refreshBase() {
	a.dirty = true
	a.tabRow.SetShouldDraw()
	a.hints.SetShouldDraw()
	if a.clock != nil {
		a.clock.SetShouldDraw()
	}
	a.tabs[a.selected].SetShouldDraw()
	if a.results != nil {
		a.results.SetShouldDraw()
	}
	if a.switcher != nil {
		a.switcher.SetShouldDraw()
	}
	a.toast.SetShouldDraw()
}

func (a *App) switchTab(delta int) {
	from := a.selected
	a.selected = (a.selected + delta + tabCount) % tabCount
	events.UI.TabChange(from, a.selected)
	a.restyleTabs()
	a.tabs[a.selected].Refresh()
	a.refreshBase()
}

// Launch hands the device over to entry. In the launcher no game is
// running, so the saved session record only exists right after a crash;
// either way it is not a live emulator and the save/quit phases are
// skipped.
func (a *App) Launch(entry Entry, now time.Time) {
	if err := a.machine.Switch(nil, entry.GameInfo()); err != nil {
		logging.Errorf("ui: launch %s: %v", entry.Name, err)
		a.ShowToast(fmt.Sprintf("Could not start %s", entry.Name), 4*time.Second, now)
		return
	}
	// Only reached with a spawning launcher.
	a.machine.Reset()
	a.tabs[TabRecents].Refresh()
	a.refreshBase()
}

// Resume performs a running-game switch from the carousel: the current
// session record identifies the game to save and quit first.
func (a *App) Resume(entry Entry, now time.Time) {
	current, err := session.Load(a.record)
	if err != nil {
		logging.Warnf("ui: load session record: %v", err)
	}
	if err := a.machine.Switch(current, entry.GameInfo()); err != nil {
		logging.Errorf("ui: resume %s: %v", entry.Name, err)
		a.ShowToast(fmt.Sprintf("Could not resume %s", entry.Name), 4*time.Second, now)
		return
	}
	a.machine.Reset()
	a.tabs[TabRecents].Refresh()
	a.refreshBase()
}

// HandleKeyEvent implements view.View. Overlays own the input path
// outright: while the switcher, keyboard or result view is up, events and
// their bubbled commands never reach the tab underneath.
func (a *App) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	if a.switcher != nil {
		if ev.Key == input.KeyA && ev.Kind == input.Pressed {
			entry, ok := a.switcher.Selected()
			a.closeSwitcher()
			if ok {
				a.Resume(entry, time.Now())
			}
			return true, nil
		}
		if _, err := a.switcher.HandleKeyEvent(ev, bus, bubble); err != nil {
			return true, err
		}
		a.interceptOverlay(bubble)
		return true, nil
	}

	if a.search.Active() {
		if _, err := a.search.HandleKeyEvent(ev, bus, bubble); err != nil {
			return true, err
		}
		a.interceptOverlay(bubble)
		// The overlay consumes its keyboard's CloseView on cancel, so the
		// active-to-inactive edge is the only signal the screen under it
		// needs repainting.
		if !a.search.Active() && a.results == nil {
			events.UI.SearchClose()
			a.refreshBase()
		}
		return true, nil
	}

	if a.results != nil {
		if ev.Key == input.KeyA && ev.Kind == input.Pressed {
			if entry, ok := a.results.Selected(); ok {
				a.Launch(entry, time.Now())
			}
			return true, nil
		}
		if _, err := a.results.HandleKeyEvent(ev, bus, bubble); err != nil {
			return true, err
		}
		a.interceptOverlay(bubble)
		return true, nil
	}

	consumed, err := a.tabs[a.selected].HandleKeyEvent(ev, bus, bubble)
	if err != nil || consumed {
		return consumed, err
	}
	if ev.Kind != input.Pressed {
		return false, nil
	}
	switch ev.Key {
	case input.KeyA:
		if entry, ok := a.tabs[a.selected].Selected(); ok {
			a.Launch(entry, time.Now())
		}
		return true, nil
	case input.KeyLeft:
		a.switchTab(-1)
		return true, nil
	case input.KeyRight:
		a.switchTab(1)
		return true, nil
	case input.KeyY:
		a.StartSearch()
		return true, nil
	case input.KeySelect:
		a.OpenSwitcher()
		return true, nil
	case input.KeyPower:
		bus.Send(command.Exit{})
		return true, nil
	}
	return false, nil
}

// interceptOverlay consumes the commands overlays bubble at the root:
// Search opens the result view, CloseView dismisses whichever overlay is
// up, StartSearch reopens the keyboard. Anything else is left on the
// bubble for the event loop to drain.
func (a *App) interceptOverlay(bubble *command.Bubble) {
	bubble.Retain(func(c command.Command) bool {
		switch c := c.(type) {
		case command.Search:
			a.search.Deactivate()
			a.openResults(c.Query)
			return false
		case command.CloseView:
			switch {
			case a.switcher != nil:
				a.closeSwitcher()
			case a.search.Active():
				a.search.Deactivate()
				a.refreshBase()
			case a.results != nil:
				a.closeResults()
			}
			return false
		case command.StartSearch:
			a.StartSearch()
			return false
		default:
			return true
		}
	})
}

// Draw implements view.View.
func (a *App) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	drawn := false
	if a.dirty {
		a.dirty = false
		if err := s.Clear(a.rect); err != nil {
			return false, err
		}
		drawn = true
	}

	if a.search.Active() {
		d, err := view.DrawDirty(s, styles, a.search, a.toast)
		return drawn || d, err
	}
	if a.switcher != nil {
		d, err := view.DrawDirty(s, styles, a.switcher, a.toast)
		return drawn || d, err
	}

	var content view.View = a.tabs[a.selected]
	if a.results != nil {
		content = a.results
	}
	d, err := view.DrawDirty(s, styles, a.tabRow, a.clockView(), content, a.hints, a.toast)
	return drawn || d, err
}

func (a *App) clockView() view.View {
	if a.clock == nil {
		return nil
	}
	return a.clock
}

// ShouldDraw implements view.View.
func (a *App) ShouldDraw() bool {
	if a.dirty {
		return true
	}
	if a.search.Active() {
		return view.ShouldDrawAny(a.search, a.toast)
	}
	if a.switcher != nil {
		return view.ShouldDrawAny(a.switcher, a.toast)
	}
	var content view.View = a.tabs[a.selected]
	if a.results != nil {
		content = a.results
	}
	return view.ShouldDrawAny(a.tabRow, a.clockView(), content, a.hints, a.toast)
}

// SetShouldDraw implements view.View.
func (a *App) SetShouldDraw() {
	a.refreshBase()
	a.search.SetShouldDraw()
}

// Children implements view.View.
func (a *App) Children() []view.View {
	children := []view.View{a.tabRow}
	if a.clock != nil {
		children = append(children, a.clock)
	}
	children = append(children, a.tabs[a.selected], a.hints)
	if a.results != nil {
		children = append(children, a.results)
	}
	if a.search.Active() {
		children = append(children, a.search)
	}
	if a.switcher != nil {
		children = append(children, a.switcher)
	}
	return append(children, a.toast)
}

// BoundingBox implements view.View.
func (a *App) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return a.rect }

// SetPosition implements view.View. The root owns the whole screen.
func (a *App) SetPosition(geom.Point) {
	panic(view.ErrRepositionUnsupported)
}
