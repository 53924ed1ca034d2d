package handoff

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/retroarch"
	"github.com/xXJSONDeruloXx/Allium/internal/session"
)

// fakeController records commands and optionally fails every call,
// simulating an emulator that never answers.
type fakeController struct {
	sent []retroarch.Command
	err  error
}

func (f *fakeController) Send(cmd retroarch.Command) error {
	f.sent = append(f.sent, cmd)
	return f.err
}

func (f *fakeController) SendRecv(cmd retroarch.Command) (string, error) {
	f.sent = append(f.sent, cmd)
	return "", f.err
}

type fakeLauncher struct {
	launched []session.GameInfo
	err      error
}

func (f *fakeLauncher) Launch(info session.GameInfo) error {
	f.launched = append(f.launched, info)
	return f.err
}

func newMachine(t *testing.T, client retroarch.Controller, launcher Launcher) (*Machine, string) {
	t.Helper()
	recordPath := filepath.Join(t.TempDir(), "state", "current_game.json")
	m := New(client, launcher, recordPath, session.NewMemoryHistory())
	m.sleep = func(time.Duration) {}
	return m, recordPath
}

func current() *session.GameInfo {
	return &session.GameInfo{
		Name: "Current Game", Path: "/roms/current.gb", Core: "gambatte",
		Command: "retroarch", HasMenu: true,
	}
}

func target() session.GameInfo {
	return session.GameInfo{
		Name: "Target Game", Path: "/roms/target.gba", Core: "mgba",
		Command: "retroarch", Args: []string{"-L", "mgba_libretro.so", "/roms/target.gba"},
		HasMenu: true,
	}
}

func TestSwitchHappyPath(t *testing.T) {
	client := &fakeController{}
	launcher := &fakeLauncher{}
	m, recordPath := newMachine(t, client, launcher)

	if err := m.Switch(current(), target()); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if m.State() != HandoffComplete {
		t.Fatalf("expected HandoffComplete, got %v", m.State())
	}

	if len(client.sent) != 2 {
		t.Fatalf("expected save then quit, got %v", client.sent)
	}
	if client.sent[0] != retroarch.SaveStateSlot(0) || client.sent[1] != retroarch.Quit() {
		t.Fatalf("unexpected command order %v", client.sent)
	}

	record, err := session.Load(recordPath)
	if err != nil || record == nil {
		t.Fatalf("expected durable record, got %+v err=%v", record, err)
	}
	want := target()
	if record.Path != want.Path || record.Core != want.Core || record.Command != want.Command {
		t.Fatalf("expected record to match target, got %+v", record)
	}
	if len(launcher.launched) != 1 || launcher.launched[0].Name != want.Name {
		t.Fatalf("expected target launched, got %+v", launcher.launched)
	}
}

func TestSwitchProceedsWhenEmulatorSilent(t *testing.T) {
	client := &fakeController{err: errors.New("connection refused")}
	launcher := &fakeLauncher{}
	m, recordPath := newMachine(t, client, launcher)

	if err := m.Switch(current(), target()); err != nil {
		t.Fatalf("expected timeouts tolerated, got %v", err)
	}
	if m.State() != HandoffComplete {
		t.Fatalf("expected HandoffComplete despite timeouts, got %v", m.State())
	}
	record, err := session.Load(recordPath)
	if err != nil || record == nil || record.Path != target().Path {
		t.Fatalf("expected record for target, got %+v err=%v", record, err)
	}
}

func TestSwitchWithoutRunningGameSkipsSaveAndQuit(t *testing.T) {
	client := &fakeController{}
	launcher := &fakeLauncher{}
	m, _ := newMachine(t, client, launcher)

	if err := m.Switch(nil, target()); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if len(client.sent) != 0 {
		t.Fatalf("expected no emulator traffic, got %v", client.sent)
	}
	if len(launcher.launched) != 1 {
		t.Fatalf("expected launch, got %d", len(launcher.launched))
	}
}

func TestSwitchSkipsSavePhaseForMenulessCurrent(t *testing.T) {
	client := &fakeController{}
	launcher := &fakeLauncher{}
	m, recordPath := newMachine(t, client, launcher)
	cur := current()
	cur.HasMenu = false

	if err := m.Switch(cur, target()); err != nil {
		t.Fatalf("switch: %v", err)
	}
	if m.State() != HandoffComplete {
		t.Fatalf("expected HandoffComplete, got %v", m.State())
	}
	// No save-state request for a session without a menu interface, but it
	// is still quit and replaced.
	if len(client.sent) != 1 || client.sent[0] != retroarch.Quit() {
		t.Fatalf("expected quit only, got %v", client.sent)
	}
	record, err := session.Load(recordPath)
	if err != nil || record == nil || record.Path != target().Path {
		t.Fatalf("expected record for target, got %+v err=%v", record, err)
	}
	if len(launcher.launched) != 1 {
		t.Fatalf("expected target launched, got %+v", launcher.launched)
	}
}

func TestSwitchAbortsWhenRecordWriteFails(t *testing.T) {
	client := &fakeController{}
	launcher := &fakeLauncher{}
	m, _ := newMachine(t, client, launcher)
	// point the record at an unwritable location
	m.recordPath = string([]byte{0})

	err := m.Switch(current(), target())
	if err == nil {
		t.Fatalf("expected persistence failure to abort the handoff")
	}
	if len(launcher.launched) != 0 {
		t.Fatalf("expected no launch after failed persist")
	}
	if m.State() != Idle {
		t.Fatalf("expected machine reset to Idle, got %v", m.State())
	}
}

func TestSwitchWhileBusy(t *testing.T) {
	m, _ := newMachine(t, &fakeController{}, &fakeLauncher{})
	m.state = SavingCurrent
	if err := m.Switch(current(), target()); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
}

func TestSwitchRecordsHistory(t *testing.T) {
	client := &fakeController{}
	launcher := &fakeLauncher{}
	recordPath := filepath.Join(t.TempDir(), "current_game.json")
	history := session.NewMemoryHistory()
	m := New(client, launcher, recordPath, history)
	m.sleep = func(time.Duration) {}

	if err := m.Switch(current(), target()); err != nil {
		t.Fatalf("switch: %v", err)
	}
	entries, err := history.Recent(10, "")
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 || entries[0].Path != target().Path {
		t.Fatalf("expected target recorded in history, got %+v", entries)
	}
}
