// Package stylesheet centralises the colors, font sizing and spacing used
// when laying out and drawing the view tree. Nodes cache layout derived from
// the active style sheet, so replacing it must be followed by a tree-wide
// redraw broadcast.
package stylesheet

import "image/color"

// Stylesheet describes the reusable style values shared across the UI.
type Stylesheet struct {
	Foreground  color.RGBA
	Background  color.RGBA
	Highlight   color.RGBA
	Disabled    color.RGBA
	Tab         color.RGBA
	TabSelected color.RGBA
	Error       color.RGBA

	UIFontSize   int
	TabFontScale float64

	// ButtonDiameter is the side of the square rendered for a button icon
	// inside hint rows.
	ButtonDiameter int

	Padding     int
	ItemSpacing int

	ShowClock        bool
	ShowBatteryLevel bool
}

var defaultStyles = Stylesheet{
	Foreground:     color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF},
	Background:     color.RGBA{R: 0x1A, G: 0x1A, B: 0x22, A: 0xFF},
	Highlight:      color.RGBA{R: 0x91, G: 0x6F, B: 0xC9, A: 0xFF},
	Disabled:       color.RGBA{R: 0x54, G: 0x54, B: 0x5E, A: 0xFF},
	Tab:            color.RGBA{R: 0x9A, G: 0x9A, B: 0xA6, A: 0xFF},
	TabSelected:    color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	Error:          color.RGBA{R: 0xD9, G: 0x3B, B: 0x3B, A: 0xFF},
	UIFontSize:     13,
	TabFontScale:   0.9,
	ButtonDiameter: 14,
	Padding:        12,
	ItemSpacing:    8,
	ShowClock:      true,
}

// Default returns a copy of the standard style set. Callers own the copy and
// may mutate it before publishing it through the resource registry.
func Default() *Stylesheet {
	s := defaultStyles
	return &s
}

// TabFontSize returns the derived tab label size.
func (s *Stylesheet) TabFontSize() int {
	size := int(float64(s.UIFontSize) * s.TabFontScale)
	if size < 1 {
		size = 1
	}
	return size
}
