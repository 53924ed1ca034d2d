// Package view implements the composable UI tree. Every visual element, from
// a single label to the launcher root, satisfies the View interface; the
// event loop drives redraw through ShouldDraw/Draw and routes input through
// HandleKeyEvent, deepest active node first.
package view

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// View is the capability set every element of the UI tree implements.
type View interface {
	// Draw renders the node if it is dirty and reports whether pixels
	// changed. Nodes clear their own dirty flag here; a node that fails to
	// do so redraws forever.
	Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error)

	// ShouldDraw reports whether this node or any reachable descendant is
	// dirty. Callers rely on it to short-circuit traversal, so it must be
	// true whenever any descendant's is.
	ShouldDraw() bool

	// SetShouldDraw marks the node and all its descendants dirty.
	// Dirtiness is caller-asserted: mutating state does not mark anything
	// by itself.
	SetShouldDraw()

	// HandleKeyEvent offers a key event to the node and reports whether it
	// was consumed. Side effects for the logical parent go onto the bubble
	// queue; process-wide effects go directly on the bus.
	HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error)

	// Children returns the ordered immediate descendants. Interface values
	// alias the underlying nodes, so the same slice serves read-only and
	// mutating traversals.
	Children() []View

	// BoundingBox returns the screen rectangle the node occupies under the
	// given style sheet.
	BoundingBox(styles *stylesheet.Stylesheet) geom.Rect

	// SetPosition relocates the node. Composite screens that own a fixed
	// rect panic with ErrRepositionUnsupported.
	SetPosition(p geom.Point)
}

// ErrRepositionUnsupported is the panic value raised by nodes whose position
// is fixed at construction.
const ErrRepositionUnsupported = "view: reposition unsupported"

// ShouldDrawAny reports whether any of the given nodes is dirty.
func ShouldDrawAny(views ...View) bool {
	for _, v := range views {
		if v != nil && v.ShouldDraw() {
			return true
		}
	}
	return false
}

// DrawDirty draws each node that reports ShouldDraw and accumulates whether
// anything changed.
func DrawDirty(s display.Surface, styles *stylesheet.Stylesheet, views ...View) (bool, error) {
	drawn := false
	for _, v := range views {
		if v == nil || !v.ShouldDraw() {
			continue
		}
		d, err := v.Draw(s, styles)
		if err != nil {
			return drawn, err
		}
		drawn = drawn || d
	}
	return drawn, nil
}

// textExtent approximates the rectangle a line of text occupies. The frame
// surface reports the true rect from Draw; layout uses this estimate when no
// surface is at hand.
func textExtent(p geom.Point, text string, size int, align geom.Alignment) geom.Rect {
	width := len([]rune(text)) * size / 2
	x := p.X
	switch align {
	case geom.AlignCenter:
		x -= width / 2
	case geom.AlignRight:
		x -= width
	}
	return geom.NewRect(x, p.Y, width, size)
}
