//go:build unix

package handoff

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/xXJSONDeruloXx/Allium/internal/session"
)

// ExecLauncher replaces the shell's process image with the emulator. On
// success the call never returns, which guarantees at most one of the two
// is ever running.
type ExecLauncher struct{}

// Launch implements Launcher.
func (ExecLauncher) Launch(info session.GameInfo) error {
	path, err := exec.LookPath(info.Command)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", info.Command, err)
	}
	argv := append([]string{info.Command}, info.Args...)
	return unix.Exec(path, argv, os.Environ())
}

// SpawnLauncher starts the emulator as a child and reports back so the
// shell can exit. Used where exec-replace is unavailable; the shell's exit
// upholds the single-emulator guarantee instead.
type SpawnLauncher struct {
	// OnSpawned runs after a successful start, typically sending Exit on
	// the command bus.
	OnSpawned func()
}

// Launch implements Launcher.
func (l SpawnLauncher) Launch(info session.GameInfo) error {
	cmd := exec.Command(info.Command, info.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", info.Command, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("release %s: %w", info.Command, err)
	}
	if l.OnSpawned != nil {
		l.OnSpawned()
	}
	return nil
}
