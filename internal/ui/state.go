package ui

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xXJSONDeruloXx/Allium/internal/logging"
)

// launcherState is the part of the launcher UI that survives a restart:
// which tab was open and where the cursor sat on each.
type launcherState struct {
	Tab     int           `json:"tab"`
	Cursors [tabCount]int `json:"cursors"`
}

// loadState reads the persisted launcher state. A missing file yields the
// zero state; a corrupt file is deleted and likewise treated as absent.
func loadState(path string) launcherState {
	var st launcherState
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return st
	}
	if err != nil {
		logging.Warnf("ui: read state: %v", err)
		return st
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		logging.Warnf("ui: corrupt state %s, discarding: %v", path, err)
		os.Remove(path)
		return launcherState{}
	}
	if st.Tab < 0 || st.Tab >= tabCount {
		st.Tab = 0
	}
	return st
}

// saveState writes the launcher state durably, via temp file and rename.
func saveState(path string, st launcherState) error {
	raw, err := json.MarshalIndent(st, "", "  ")
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
