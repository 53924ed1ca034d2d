// Package screenshot names and locates save-state preview images. The file
// name is a content-addressed digest over the game's canonical path, core
// and state slot, so a preview written by one process is found by any
// successor without shared state. Earlier releases hashed without the core
// identifier; that legacy name is still checked on lookup so old previews
// keep working.
package screenshot

import (
	"crypto/sha256"
	"encoding/base32"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// crockford is the Crockford base32 alphabet the digests are encoded with.
// It must never change: file names on existing installs depend on it.
var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// Key returns the primary preview file name for {path, core, slot}.
func Key(path, core string, slot int) string {
	h := sha256.New()
	h.Write([]byte(canonical(path)))
	h.Write([]byte(core))
	h.Write([]byte{byte(slot)})
	return crockford.EncodeToString(h.Sum(nil)) + ".png"
}

// LegacyKey returns the pre-core file name for {path, slot}.
func LegacyKey(path string, slot int) string {
	h := sha256.New()
	h.Write([]byte(canonical(path)))
	h.Write([]byte{byte(slot)})
	return crockford.EncodeToString(h.Sum(nil)) + ".png"
}

// canonical resolves symlinks and relative segments so the same content
// always digests identically. A path that cannot be resolved (content on an
// unmounted card) is used as-is.
func canonical(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if abs, absErr := filepath.Abs(path); absErr == nil {
			return abs
		}
		return path
	}
	return resolved
}

// Lookup returns the preview image path for {path, core, slot} under dir.
// The primary name wins; the legacy name is the fallback. The lookup is
// read-only: it never creates placeholder files.
func Lookup(dir, path, core string, slot int) (string, bool) {
	primary := filepath.Join(dir, Key(path, core, slot))
	if fileExists(primary) {
		return primary, true
	}
	legacy := filepath.Join(dir, LegacyKey(path, slot))
	if fileExists(legacy) {
		return legacy, true
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Save writes img as the primary preview for {path, core, slot}, creating
// dir when needed.
func Save(dir string, img image.Image, path, core string, slot int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(dir, Key(path, core, slot))
	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", err
	}
	return target, nil
}
