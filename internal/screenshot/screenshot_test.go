package screenshot

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestKeysAreDeterministicAndDistinct(t *testing.T) {
	a := Key("/roms/game.gb", "gambatte", 0)
	b := Key("/roms/game.gb", "gambatte", 0)
	if a != b {
		t.Fatalf("expected deterministic key, got %q vs %q", a, b)
	}
	if Key("/roms/game.gb", "mgba", 0) == a {
		t.Fatalf("expected core to affect key")
	}
	if Key("/roms/game.gb", "gambatte", 1) == a {
		t.Fatalf("expected slot to affect key")
	}
	if LegacyKey("/roms/game.gb", 0) == a {
		t.Fatalf("expected legacy key to differ from primary")
	}
}

func TestLookupPrefersPrimary(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, Key("/roms/game.gb", "gambatte", 0)))
	touch(t, filepath.Join(dir, LegacyKey("/roms/game.gb", 0)))

	got, ok := Lookup(dir, "/roms/game.gb", "gambatte", 0)
	if !ok {
		t.Fatalf("expected hit")
	}
	if filepath.Base(got) != Key("/roms/game.gb", "gambatte", 0) {
		t.Fatalf("expected primary preferred, got %s", got)
	}
}

func TestLookupFallsBackToLegacy(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, LegacyKey("/roms/game.gb", 0)))

	got, ok := Lookup(dir, "/roms/game.gb", "gambatte", 0)
	if !ok {
		t.Fatalf("expected legacy hit")
	}
	if filepath.Base(got) != LegacyKey("/roms/game.gb", 0) {
		t.Fatalf("expected legacy file, got %s", got)
	}
}

func TestLookupMissReportsAbsentWithoutSideEffects(t *testing.T) {
	dir := t.TempDir()
	if _, ok := Lookup(dir, "/roms/game.gb", "gambatte", 0); ok {
		t.Fatalf("expected miss")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected read-only lookup, found %d files", len(entries))
	}
}

func TestSaveThenLookup(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screenshots")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	written, err := Save(dir, img, "/roms/game.gb", "gambatte", 0)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := Lookup(dir, "/roms/game.gb", "gambatte", 0)
	if !ok || got != written {
		t.Fatalf("expected %s, got %s ok=%v", written, got, ok)
	}
}
