package view

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// Row lays out its children horizontally with a fixed gap. Left-aligned
// rows grow rightward from the anchor; right-aligned rows grow leftward,
// which is how hint rows hug the bottom-right corner.
type Row struct {
	point    geom.Point
	children []View
	align    geom.Alignment
	spacing  int
	dirty    bool
}

// NewRow constructs a row anchored at point.
func NewRow(point geom.Point, children []View, align geom.Alignment, spacing int) *Row {
	return &Row{point: point, children: children, align: align, spacing: spacing, dirty: true}
}

// Get returns the child at index i, or nil when out of range.
func (r *Row) Get(i int) View {
	if i < 0 || i >= len(r.children) {
		return nil
	}
	return r.children[i]
}

// Len returns the number of children.
func (r *Row) Len() int { return len(r.children) }

// Draw implements View.
func (r *Row) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	r.layout(styles)
	r.dirty = false
	return DrawDirty(s, styles, r.children...)
}

// layout repositions children against the current style sheet. Children
// whose position changed mark themselves dirty in SetPosition.
func (r *Row) layout(styles *stylesheet.Stylesheet) {
	switch r.align {
	case geom.AlignRight:
		x := r.point.X
		for i := len(r.children) - 1; i >= 0; i-- {
			child := r.children[i]
			w := child.BoundingBox(styles).W
			x -= w
			child.SetPosition(geom.Point{X: x, Y: r.point.Y})
			x -= r.spacing
		}
	default:
		x := r.point.X
		for _, child := range r.children {
			child.SetPosition(geom.Point{X: x, Y: r.point.Y})
			x += child.BoundingBox(styles).W + r.spacing
		}
	}
}

// ShouldDraw implements View.
func (r *Row) ShouldDraw() bool {
	return r.dirty || ShouldDrawAny(r.children...)
}

// SetShouldDraw implements View.
func (r *Row) SetShouldDraw() {
	r.dirty = true
	for _, child := range r.children {
		child.SetShouldDraw()
	}
}

// HandleKeyEvent implements View, offering the event to children in order.
func (r *Row) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	for _, child := range r.children {
		consumed, err := child.HandleKeyEvent(ev, bus, bubble)
		if err != nil || consumed {
			return consumed, err
		}
	}
	return false, nil
}

// Children implements View.
func (r *Row) Children() []View { return r.children }

// BoundingBox implements View.
func (r *Row) BoundingBox(styles *stylesheet.Stylesheet) geom.Rect {
	r.layout(styles)
	var box geom.Rect
	for _, child := range r.children {
		box = box.Union(child.BoundingBox(styles))
	}
	if box.Empty() {
		return geom.NewRect(r.point.X, r.point.Y, 0, 0)
	}
	return box
}

// SetPosition implements View.
func (r *Row) SetPosition(p geom.Point) {
	if r.point == p {
		return
	}
	r.point = p
	r.dirty = true
	for _, child := range r.children {
		child.SetShouldDraw()
	}
}
