// Package session persists "which game is running" across process
// boundaries. The shell writes a GameInfo record immediately before handing
// the device to an emulator; the successor shell process reads it exactly
// once at startup to resume where the last one left off. Recent launches are
// additionally tracked in the history store backing the game switcher.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xXJSONDeruloXx/Allium/internal/logging"
)

// GameInfo describes the game a process is about to run or is running.
type GameInfo struct {
	Name      string   `json:"name"`
	Path      string   `json:"path"`
	Core      string   `json:"core"`
	Command   string   `json:"command"`
	Args      []string `json:"args"`
	HasMenu   bool     `json:"has_menu"`
	NeedsSwap bool     `json:"needs_swap"`
}

// Load reads the record at path. A missing file means no prior session and
// returns (nil, nil). A corrupt file is deleted and likewise reported as
// absent; surfacing it as an error would brick the shell on every boot.
func Load(path string) (*GameInfo, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session record: %w", err)
	}
	var info GameInfo
	if err := json.Unmarshal(data, &info); err != nil {
		logging.Warnf("session: corrupt record %s, deleting: %v", path, err)
		if rmErr := os.Remove(path); rmErr != nil {
			logging.Error(rmErr)
		}
		return nil, nil
	}
	return &info, nil
}

// Save writes the record durably. The write goes through a temp file and
// rename so a crash mid-write never leaves a half record for the successor.
func (g *GameInfo) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit session record: %w", err)
	}
	return nil
}

// Remove deletes the record, tolerating its absence.
func Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
