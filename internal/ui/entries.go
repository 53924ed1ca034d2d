package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xXJSONDeruloXx/Allium/internal/logging"
	"github.com/xXJSONDeruloXx/Allium/internal/session"
)

// Entry is one launchable item: a game under a console folder or an app
// pak. It carries everything needed to build the session record.
type Entry struct {
	Name      string
	Path      string
	Core      string
	Command   string
	Args      []string
	HasMenu   bool
	NeedsSwap bool
}

// GameInfo converts the entry into a persistable session record.
func (e Entry) GameInfo() session.GameInfo {
	return session.GameInfo{
		Name:      e.Name,
		Path:      e.Path,
		Core:      e.Core,
		Command:   e.Command,
		Args:      e.Args,
		HasMenu:   e.HasMenu,
		NeedsSwap: e.NeedsSwap,
	}
}

// entryFromHistory rebuilds an Entry from a history row.
func entryFromHistory(h session.HistoryEntry) Entry {
	return Entry{
		Name:      h.Name,
		Path:      h.Path,
		Core:      h.Core,
		Command:   h.Command,
		Args:      h.Args,
		HasMenu:   h.HasMenu,
		NeedsSwap: h.NeedsSwap,
	}
}

// corePath returns the libretro core object for a console identifier.
func corePath(core string) string {
	return fmt.Sprintf("/mnt/SDCARD/RetroArch/.retroarch/cores/%s_libretro.so", core)
}

// gameEntry builds the launch description for a ROM under a console folder.
// The console folder name doubles as the core identifier.
func gameEntry(console, path string) Entry {
	core := strings.ToLower(console)
	return Entry{
		Name:    displayName(path),
		Path:    path,
		Core:    core,
		Command: "retroarch",
		Args:    []string{"-L", corePath(core), path},
		HasMenu: true,
	}
}

// displayName strips the extension and bracketed release tags from a file
// name.
func displayName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	for {
		trimmed := strings.TrimSpace(name)
		if i := strings.LastIndexAny(trimmed, "(["); i > 0 && strings.IndexAny(trimmed[i:], ")]") > 0 {
			name = trimmed[:i]
			continue
		}
		return strings.TrimSpace(name)
	}
}

// ScanGames walks one level of console folders under romsDir. Unreadable
// directories are logged and skipped; a missing romsDir yields an empty
// list.
func ScanGames(romsDir string) []Entry {
	consoles, err := os.ReadDir(romsDir)
	if err != nil {
		logging.Warnf("ui: scan roms: %v", err)
		return nil
	}
	var entries []Entry
	for _, console := range consoles {
		if !console.IsDir() || strings.HasPrefix(console.Name(), ".") {
			continue
		}
		dir := filepath.Join(romsDir, console.Name())
		games, err := os.ReadDir(dir)
		if err != nil {
			logging.Warnf("ui: scan %s: %v", dir, err)
			continue
		}
		for _, game := range games {
			if game.IsDir() || strings.HasPrefix(game.Name(), ".") {
				continue
			}
			entries = append(entries, gameEntry(console.Name(), filepath.Join(dir, game.Name())))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// ScanApps lists app paks under appsDir. A pak directory is launched via
// its bundled launch script and has no emulator menu.
func ScanApps(appsDir string) []Entry {
	paks, err := os.ReadDir(appsDir)
	if err != nil {
		logging.Warnf("ui: scan apps: %v", err)
		return nil
	}
	var entries []Entry
	for _, pak := range paks {
		if !pak.IsDir() || !strings.HasSuffix(pak.Name(), ".pak") {
			continue
		}
		path := filepath.Join(appsDir, pak.Name())
		entries = append(entries, Entry{
			Name:    strings.TrimSuffix(pak.Name(), ".pak"),
			Path:    path,
			Command: filepath.Join(path, "launch.sh"),
			HasMenu: false,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}
