// Package app bootstraps the launcher and runs the cooperative event loop:
// one goroutine multiplexing the frame ticker, the input source and the
// command bus.
package app

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/handoff"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/logging"
	"github.com/xXJSONDeruloXx/Allium/internal/logging/events"
	"github.com/xXJSONDeruloXx/Allium/internal/monitor"
	"github.com/xXJSONDeruloXx/Allium/internal/resources"
	"github.com/xXJSONDeruloXx/Allium/internal/retroarch"
	"github.com/xXJSONDeruloXx/Allium/internal/screenshot"
	"github.com/xXJSONDeruloXx/Allium/internal/session"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
	"github.com/xXJSONDeruloXx/Allium/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	BaseDir       string
	RomsDir       string
	AppsDir       string
	Width         int
	Height        int
	RetroArchAddr string

	// HistoryCapacity caps the recents table; zero keeps the default.
	HistoryCapacity int
}

// frameInterval paces the redraw loop at roughly 30 frames per second.
const frameInterval = 33 * time.Millisecond

// busBuffer absorbs command bursts from concurrent senders without
// blocking them on the loop.
const busBuffer = 16

func (c Config) recordPath() string    { return filepath.Join(c.BaseDir, "state", "current_game.json") }
func (c Config) statePath() string     { return filepath.Join(c.BaseDir, "state", "launcher.json") }
func (c Config) historyPath() string   { return filepath.Join(c.BaseDir, "state", "history.db") }
func (c Config) valuesPath() string    { return filepath.Join(c.BaseDir, "state", "values.json") }
func (c Config) screenshotDir() string { return filepath.Join(c.BaseDir, "screenshots") }

// Paths locates the launcher's persistent files. It is published through
// the resource registry so any node can resolve the current-session record
// without threading the config through every constructor.
type Paths struct {
	Record      string
	State       string
	History     string
	Values      string
	Screenshots string
}

func (c Config) paths() Paths {
	return Paths{
		Record:      c.recordPath(),
		State:       c.statePath(),
		History:     c.historyPath(),
		Values:      c.valuesPath(),
		Screenshots: c.screenshotDir(),
	}
}

// Run bootstraps the launcher and blocks until an Exit command is handled
// or the surface fails.
func Run(cfg Config, surface display.Surface, source input.Source) error {
	if err := os.MkdirAll(filepath.Dir(cfg.historyPath()), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	history, err := session.OpenSQLiteHistory(cfg.historyPath())
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer history.Close()

	res := resources.New()
	resources.Put(res, stylesheet.Default())
	resources.Put[session.HistoryStore](res, history)
	resources.Put(res, cfg.paths())

	paths := resources.Get[Paths](res)
	client := retroarch.New(cfg.RetroArchAddr)
	machine := handoff.New(client, handoff.ExecLauncher{},
		paths.Record, resources.Get[session.HistoryStore](res))
	machine.SetCapacity(cfg.HistoryCapacity)

	root := ui.NewApp(ui.Options{
		Rect:          surface.Bounds(),
		Styles:        resources.Get[*stylesheet.Stylesheet](res),
		History:       resources.Get[session.HistoryStore](res),
		Machine:       machine,
		RecordPath:    paths.Record,
		StatePath:     paths.State,
		ScreenshotDir: paths.Screenshots,
		RomsDir:       cfg.RomsDir,
		AppsDir:       cfg.AppsDir,
	})
	root.SetShouldDraw()

	watcher := monitor.NewWatcher(paths.Record, time.Second)
	defer watcher.Stop()

	loop := &loop{
		cfg:     cfg,
		surface: surface,
		styles:  resources.Get[*stylesheet.Stylesheet](res),
		root:    root,
		bus:     command.NewBus(busBuffer),
		watcher: watcher,
	}
	return loop.run(source)
}

type loop struct {
	cfg     Config
	surface display.Surface
	styles  *stylesheet.Stylesheet
	root    *ui.App
	bus     *command.Bus
	watcher *monitor.Watcher
}

func (l *loop) run(source input.Source) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	recordEvents := l.watcher.Events()
	for {
		select {
		case now := <-ticker.C:
			l.root.Tick(now)
			if l.root.ShouldDraw() {
				if _, err := l.root.Draw(l.surface, l.styles); err != nil {
					return fmt.Errorf("draw: %w", err)
				}
				if err := l.surface.Flush(); err != nil {
					return fmt.Errorf("flush: %w", err)
				}
			}

		case ev, ok := <-source.Events():
			if !ok {
				return l.shutdown("input closed")
			}
			l.dispatch(ev)

		case c := <-l.bus.C():
			if exit := l.handle(c); exit {
				return l.shutdown("exit command")
			}

		case ev, ok := <-recordEvents:
			if !ok {
				recordEvents = nil
				continue
			}
			if ev.Err != nil {
				logging.Warnf("app: session record: %v", ev.Err)
				continue
			}
			// A game started or exited behind the launcher; the recents
			// tab is stale either way.
			l.root.Tab(ui.TabRecents).Refresh()
		}
	}
}

// dispatch offers one key event to the view tree and drains whatever the
// tree bubbled all the way up. Each event gets a fresh bubble, so a
// command consumed by an intermediate view is gone for good.
func (l *loop) dispatch(ev input.KeyEvent) {
	bubble := command.NewBubble()
	consumed, err := l.root.HandleKeyEvent(ev, l.bus, bubble)
	if err != nil {
		logging.Errorf("app: handle %s: %v", ev.Key, err)
	}
	events.Input.Key(ev.Key.String(), ev.Kind.String(), consumed)
	for _, c := range bubble.Drain() {
		if exit := l.handle(c); exit {
			// Let the loop exit through the bus so both paths share
			// one shutdown.
			l.bus.Send(command.Exit{})
			return
		}
	}
}

// handle executes one command at the root and reports whether the loop
// should exit.
func (l *loop) handle(c command.Command) bool {
	switch c := c.(type) {
	case command.Exit:
		return true
	case command.Exec:
		l.execDetached(c)
	case command.Toast:
		l.root.ShowToast(c.Text, c.Duration, time.Now())
	case command.StartSearch:
		l.root.StartSearch()
	case command.Redraw:
		l.root.SetShouldDraw()
	case command.SaveStateScreenshot:
		l.captureScreenshot(c.Slot)
	case command.ValueChanged:
		if err := persistValue(l.cfg.valuesPath(), c.Key, c.Value); err != nil {
			logging.Warnf("app: persist %s: %v", c.Key, err)
		}
	case command.PopulateDb:
		l.root.Tab(ui.TabGames).Refresh()
		l.root.Tab(ui.TabApps).Refresh()
	default:
		logging.Debugf("app: unhandled command %T", c)
	}
	return false
}

func (l *loop) execDetached(c command.Exec) {
	cmd := exec.Command(c.Command, c.Args...)
	if err := cmd.Start(); err != nil {
		logging.Warnf("app: exec %s: %v", c.Command, err)
		return
	}
	if err := cmd.Process.Release(); err != nil {
		logging.Warnf("app: release %s: %v", c.Command, err)
	}
}

// captureScreenshot snapshots the frame buffer and files it under the
// running game's correlation key. Without a running game or a
// snapshot-capable surface it is a no-op.
func (l *loop) captureScreenshot(slot int) {
	snap, ok := l.surface.(display.Snapshotter)
	if !ok {
		logging.Debugf("app: surface cannot snapshot")
		return
	}
	current, err := session.Load(l.cfg.recordPath())
	if err != nil || current == nil {
		logging.Warnf("app: screenshot without session record (err=%v)", err)
		return
	}
	if _, err := screenshot.Save(l.cfg.screenshotDir(), snap.Snapshot(), current.Path, current.Core, slot); err != nil {
		logging.Warnf("app: save screenshot: %v", err)
	}
}

// persistValue merges one key into the values file. Edited values that
// escape every view land here, so an unknown key is stored rather than
// dropped.
func persistValue(path, key, value string) error {
	values := map[string]string{}
	if raw, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(raw, &values); err != nil {
			logging.Warnf("app: discarding corrupt values file: %v", err)
			values = map[string]string{}
		}
	}
	values[key] = value
	raw, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (l *loop) shutdown(reason string) error {
	events.App.Exit(reason)
	if err := l.root.SaveState(); err != nil {
		logging.Warnf("app: save launcher state: %v", err)
	}
	return nil
}

// Bounds is a convenience for building a surface matching the configured
// screen.
func (c Config) Bounds() geom.Rect {
	return geom.NewRect(0, 0, c.Width, c.Height)
}
