// Package handoff transfers control of the device from one game session to
// another. The sequence is deliberate: the current game is asked to save,
// the emulator is quit, the successor's session record is made durable, and
// only then is the process replaced. Nothing after the record write can be
// recovered by this process, so every fallible step is ordered before it.
package handoff

import (
	"errors"
	"fmt"
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/logging"
	"github.com/xXJSONDeruloXx/Allium/internal/logging/events"
	"github.com/xXJSONDeruloXx/Allium/internal/retroarch"
	"github.com/xXJSONDeruloXx/Allium/internal/session"
)

// State enumerates the machine's phases.
type State int

const (
	Idle State = iota
	SavingCurrent
	QuittingCurrent
	PersistingNext
	HandoffComplete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case SavingCurrent:
		return "saving-current"
	case QuittingCurrent:
		return "quitting-current"
	case PersistingNext:
		return "persisting-next"
	case HandoffComplete:
		return "handoff-complete"
	}
	return "unknown"
}

// ErrBusy is returned when a handoff is already in flight.
var ErrBusy = errors.New("handoff: already in progress")

// saveSlot is the auto-save slot used when switching away from a game.
const saveSlot = 0

// settleDelay is how long the machine waits after save and quit requests.
// Fixed by the hardware's flash flush time, not caller-configurable.
const settleDelay = 500 * time.Millisecond

// Launcher starts the successor process. Launch only returns on failure
// for the exec-replace implementation.
type Launcher interface {
	Launch(info session.GameInfo) error
}

// Machine drives a single game-to-game handoff.
type Machine struct {
	client     retroarch.Controller
	launcher   Launcher
	history    session.HistoryStore
	recordPath string
	capacity   int

	state  State
	settle time.Duration
	sleep  func(time.Duration)
}

// New constructs an idle machine. history may be nil when the switcher is
// driven from an ad-hoc list.
func New(client retroarch.Controller, launcher Launcher, recordPath string, history session.HistoryStore) *Machine {
	return &Machine{
		client:     client,
		launcher:   launcher,
		history:    history,
		recordPath: recordPath,
		capacity:   session.DefaultHistoryCapacity,
		state:      Idle,
		settle:     settleDelay,
		sleep:      time.Sleep,
	}
}

// State returns the machine's current phase.
func (m *Machine) State() State { return m.state }

// SetCapacity overrides the history cap enforced after each switch.
func (m *Machine) SetCapacity(n int) {
	if n > 0 {
		m.capacity = n
	}
}

// Reset re-arms a completed machine. Only meaningful with a spawning
// launcher, where control returns to the caller after a handoff.
func (m *Machine) Reset() {
	if m.state == HandoffComplete {
		m.state = Idle
	}
}

func (m *Machine) transition(to State) {
	events.Handoff.Transition(m.state.String(), to.String())
	m.state = to
}

// Switch hands the device from current to target. current may be nil when
// no game is running, in which case the save and quit phases are skipped.
// A running session without a menu interface cannot be asked to save, so
// only the save phase is skipped; it is still quit and replaced.
// Control-client failures are tolerated: the user asked to switch now, not
// to guarantee the old game's save. A failed record write aborts before the
// point of no return and resets the machine.
func (m *Machine) Switch(current *session.GameInfo, target session.GameInfo) error {
	if m.state != Idle {
		return ErrBusy
	}
	if current != nil {
		if current.HasMenu {
			m.transition(SavingCurrent)
			if err := m.client.Send(retroarch.SaveStateSlot(saveSlot)); err != nil {
				logging.Warnf("handoff: save state: %v", err)
				events.Handoff.Timeout(m.state.String(), string(retroarch.SaveStateSlot(saveSlot)))
			}
			m.sleep(m.settle)
		}

		m.transition(QuittingCurrent)
		if err := m.client.Send(retroarch.Quit()); err != nil {
			logging.Warnf("handoff: quit emulator: %v", err)
			events.Handoff.Timeout(m.state.String(), string(retroarch.Quit()))
		}
		m.sleep(m.settle)
	}

	m.transition(PersistingNext)
	if m.history != nil {
		if err := m.history.Touch(session.HistoryEntry{GameInfo: target}); err != nil {
			logging.Warnf("handoff: history touch: %v", err)
		} else if err := m.history.Evict(m.capacity); err != nil {
			logging.Warnf("handoff: history evict: %v", err)
		}
	}
	if err := target.Save(m.recordPath); err != nil {
		m.state = Idle
		return fmt.Errorf("persist session record: %w", err)
	}

	m.transition(HandoffComplete)
	events.Handoff.Launch(target.Name, target.Command)
	if err := m.launcher.Launch(target); err != nil {
		return fmt.Errorf("launch %s: %w", target.Name, err)
	}
	return nil
}
