//go:build sdl

package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/xXJSONDeruloXx/Allium/internal/app"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// newDisplay opens an SDL window and pumps its keyboard events into a
// channel source, mapped to the handheld's button layout.
func newDisplay(cfg app.Config) (display.Surface, input.Source, func(), error) {
	window, err := display.NewWindow("Allium", cfg.Width, cfg.Height, stylesheet.Default().Background)
	if err != nil {
		return nil, nil, nil, err
	}
	source := input.NewChanSource(32)
	stop := make(chan struct{})
	pumpDone := make(chan struct{})
	go pumpEvents(source, stop, pumpDone)
	cleanup := func() {
		close(stop)
		<-pumpDone
		source.Close()
		window.Close()
	}
	return window, source, cleanup, nil
}

func pumpEvents(source *input.ChanSource, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-stop:
			return
		default:
		}
		event := sdl.WaitEventTimeout(100)
		if event == nil {
			continue
		}
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			source.Push(input.Press(input.KeyPower))
		case *sdl.KeyboardEvent:
			key := mapScancode(ev.Keysym.Scancode)
			if key == input.KeyUnknown {
				continue
			}
			kind := input.Pressed
			if ev.Type == sdl.KEYUP {
				kind = input.Released
			} else if ev.Repeat > 0 {
				kind = input.Autorepeat
			}
			source.Push(input.KeyEvent{Key: key, Kind: kind})
		}
	}
}

// mapScancode follows the common desktop emulator layout: arrows for the
// d-pad, ZXAS for the face buttons, Q/W for the shoulders.
func mapScancode(code sdl.Scancode) input.Key {
	switch code {
	case sdl.SCANCODE_UP:
		return input.KeyUp
	case sdl.SCANCODE_DOWN:
		return input.KeyDown
	case sdl.SCANCODE_LEFT:
		return input.KeyLeft
	case sdl.SCANCODE_RIGHT:
		return input.KeyRight
	case sdl.SCANCODE_Z:
		return input.KeyA
	case sdl.SCANCODE_X:
		return input.KeyB
	case sdl.SCANCODE_A:
		return input.KeyX
	case sdl.SCANCODE_S:
		return input.KeyY
	case sdl.SCANCODE_Q:
		return input.KeyL
	case sdl.SCANCODE_W:
		return input.KeyR
	case sdl.SCANCODE_RETURN:
		return input.KeyStart
	case sdl.SCANCODE_RSHIFT:
		return input.KeySelect
	case sdl.SCANCODE_ESCAPE:
		return input.KeyMenu
	default:
		return input.KeyUnknown
	}
}
