// Package input defines the handheld's button events and the source
// interface the event loop reads from. The evdev reader on device and the
// SDL keyboard shim on desktop both deliver events through the same channel.
package input

// Key identifies a physical button on the handheld.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyX
	KeyY
	KeyStart
	KeySelect
	KeyL
	KeyR
	KeyMenu
	KeyPower
	KeyVolUp
	KeyVolDown
)

var keyNames = map[Key]string{
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyA:       "a",
	KeyB:       "b",
	KeyX:       "x",
	KeyY:       "y",
	KeyStart:   "start",
	KeySelect:  "select",
	KeyL:       "l",
	KeyR:       "r",
	KeyMenu:    "menu",
	KeyPower:   "power",
	KeyVolUp:   "vol-up",
	KeyVolDown: "vol-down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kind distinguishes press, release and autorepeat events.
type Kind int

const (
	Pressed Kind = iota
	Released
	Autorepeat
)

func (k Kind) String() string {
	switch k {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	case Autorepeat:
		return "autorepeat"
	}
	return "unknown"
}

// KeyEvent is a single button transition.
type KeyEvent struct {
	Key  Key
	Kind Kind
}

// Press is shorthand for a Pressed event, used heavily in tests.
func Press(k Key) KeyEvent { return KeyEvent{Key: k, Kind: Pressed} }

// Source delivers key events to the event loop. Close releases the
// underlying device.
type Source interface {
	Events() <-chan KeyEvent
	Close() error
}

// ChanSource is a Source backed by a plain channel. Tests and the SDL shim
// feed it directly.
type ChanSource struct {
	ch chan KeyEvent
}

// NewChanSource returns a channel-backed source with the given buffer.
func NewChanSource(buffer int) *ChanSource {
	return &ChanSource{ch: make(chan KeyEvent, buffer)}
}

// Push queues an event, dropping it when the buffer is full. Input is lossy
// by nature; blocking the producer would stall the device thread.
func (s *ChanSource) Push(ev KeyEvent) {
	select {
	case s.ch <- ev:
	default:
	}
}

// Events implements Source.
func (s *ChanSource) Events() <-chan KeyEvent { return s.ch }

// Close implements Source.
func (s *ChanSource) Close() error {
	close(s.ch)
	return nil
}
