package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDisplayName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/roms/NES/Metroid.nes", "Metroid"},
		{"/roms/SNES/Super Mario World (USA).sfc", "Super Mario World"},
		{"/roms/GB/Tetris (World) (Rev A).gb", "Tetris"},
		{"/roms/NES/Zelda [!].nes", "Zelda"},
		{"/roms/PS/Final Fantasy VII (Disc 1) [NTSC].bin", "Final Fantasy VII"},
	}
	for _, tc := range cases {
		if got := displayName(tc.path); got != tc.want {
			t.Fatalf("displayName(%q): expected %q, got %q", tc.path, tc.want, got)
		}
	}
}

func TestScanGames(t *testing.T) {
	roms := t.TempDir()
	mustWrite := func(parts ...string) {
		path := filepath.Join(parts...)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("rom"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	mustWrite(roms, "NES", "Metroid.nes")
	mustWrite(roms, "NES", "Zelda.nes")
	mustWrite(roms, "SNES", "smw.sfc")
	mustWrite(roms, "NES", ".hidden.nes")
	mustWrite(roms, ".Trash", "junk.bin")

	entries := ScanGames(roms)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	// Sorted by name.
	if entries[0].Name != "Metroid" || entries[1].Name != "Zelda" || entries[2].Name != "smw" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	for _, e := range entries {
		if !e.HasMenu {
			t.Fatalf("expected games to have a menu interface: %+v", e)
		}
	}
	if entries[0].Core != "nes" {
		t.Fatalf("expected core from console folder, got %q", entries[0].Core)
	}
	if entries[0].Command != "retroarch" {
		t.Fatalf("expected retroarch command, got %q", entries[0].Command)
	}
}

func TestScanGamesMissingDir(t *testing.T) {
	if entries := ScanGames(filepath.Join(t.TempDir(), "nope")); entries != nil {
		t.Fatalf("expected nil for missing dir, got %+v", entries)
	}
}

func TestScanApps(t *testing.T) {
	apps := t.TempDir()
	for _, dir := range []string{"RetroArch.pak", "Files.pak", "notes"} {
		if err := os.MkdirAll(filepath.Join(apps, dir), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}
	entries := ScanApps(apps)
	if len(entries) != 2 {
		t.Fatalf("expected 2 paks, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "Files" || entries[1].Name != "RetroArch" {
		t.Fatalf("unexpected order: %+v", entries)
	}
	if entries[0].HasMenu {
		t.Fatalf("expected apps to have no menu interface")
	}
	if filepath.Base(entries[0].Command) != "launch.sh" {
		t.Fatalf("expected launch script command, got %q", entries[0].Command)
	}
}
