//go:build !sdl

package main

import (
	"github.com/xXJSONDeruloXx/Allium/internal/app"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// newDisplay builds the software frame buffer. Input arrives through a
// channel source fed by whatever shim the platform wires up (tests and
// headless runs push events directly).
func newDisplay(cfg app.Config) (display.Surface, input.Source, func(), error) {
	frame := display.NewFrame(cfg.Width, cfg.Height, stylesheet.Default().Background)
	source := input.NewChanSource(32)
	return frame, source, func() { source.Close() }, nil
}
