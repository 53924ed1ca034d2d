package view

import (
	"image/color"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// Label is a single line of styled text.
type Label struct {
	point    geom.Point
	text     string
	align    geom.Alignment
	color    *color.RGBA
	fontSize int

	dirty bool
	drawn geom.Rect
}

// NewLabel constructs a label anchored at point.
func NewLabel(point geom.Point, text string, align geom.Alignment) *Label {
	return &Label{point: point, text: text, align: align, dirty: true}
}

// SetText replaces the label text and marks it dirty.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.dirty = true
}

// Text returns the current text.
func (l *Label) Text() string { return l.text }

// SetColor overrides the foreground color.
func (l *Label) SetColor(c color.RGBA) {
	l.color = &c
	l.dirty = true
}

// ClearColor reverts to the style sheet foreground.
func (l *Label) ClearColor() {
	l.color = nil
	l.dirty = true
}

// SetFontSize overrides the style sheet font size.
func (l *Label) SetFontSize(size int) {
	l.fontSize = size
	l.dirty = true
}

// Draw implements View. The previously drawn rect is cleared first so a
// shrinking label leaves no stale pixels behind.
func (l *Label) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !l.dirty {
		return false, nil
	}
	if !l.drawn.Empty() {
		if err := s.Clear(l.drawn); err != nil {
			return false, err
		}
	}
	l.dirty = false
	if l.text == "" {
		l.drawn = geom.Rect{}
		return true, nil
	}
	c := styles.Foreground
	if l.color != nil {
		c = *l.color
	}
	rect, err := s.DrawText(l.point, l.text, l.size(styles), c, l.align)
	if err != nil {
		return false, err
	}
	l.drawn = rect
	return true, nil
}

// ShouldDraw implements View.
func (l *Label) ShouldDraw() bool { return l.dirty }

// SetShouldDraw implements View.
func (l *Label) SetShouldDraw() { l.dirty = true }

// HandleKeyEvent implements View. Labels are not interactive.
func (l *Label) HandleKeyEvent(input.KeyEvent, *command.Bus, *command.Bubble) (bool, error) {
	return false, nil
}

// Children implements View.
func (l *Label) Children() []View { return nil }

// BoundingBox implements View.
func (l *Label) BoundingBox(styles *stylesheet.Stylesheet) geom.Rect {
	return textExtent(l.point, l.text, l.size(styles), l.align)
}

// SetPosition implements View.
func (l *Label) SetPosition(p geom.Point) {
	if l.point == p {
		return
	}
	l.point = p
	l.dirty = true
}

func (l *Label) size(styles *stylesheet.Stylesheet) int {
	if l.fontSize > 0 {
		return l.fontSize
	}
	return styles.UIFontSize
}
