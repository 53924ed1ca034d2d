package view

import (
	"strings"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// ButtonHint pairs a button glyph with an action label, shown along the
// bottom edge of a screen.
type ButtonHint struct {
	point geom.Point
	key   input.Key
	label string
	dirty bool
	drawn geom.Rect
}

// NewButtonHint constructs a hint for the given button.
func NewButtonHint(point geom.Point, key input.Key, label string) *ButtonHint {
	return &ButtonHint{point: point, key: key, label: label, dirty: true}
}

// SetLabel replaces the hint text.
func (b *ButtonHint) SetLabel(label string) {
	if b.label == label {
		return
	}
	b.label = label
	b.dirty = true
}

// Draw implements View.
func (b *ButtonHint) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !b.dirty {
		return false, nil
	}
	b.dirty = false
	if !b.drawn.Empty() {
		if err := s.Clear(b.drawn); err != nil {
			return false, err
		}
	}
	d := styles.ButtonDiameter
	icon := geom.NewRect(b.point.X, b.point.Y, d, d)
	if err := s.FillRect(icon, styles.Highlight); err != nil {
		return false, err
	}
	glyph := strings.ToUpper(b.key.String())
	if len(glyph) > 1 {
		glyph = glyph[:1]
	}
	if _, err := s.DrawText(icon.Center().Add(geom.Point{Y: -styles.UIFontSize / 2}), glyph,
		styles.UIFontSize, styles.Background, geom.AlignCenter); err != nil {
		return false, err
	}
	text := geom.Point{X: icon.Right() + styles.ItemSpacing/2, Y: b.point.Y}
	rect, err := s.DrawText(text, b.label, styles.UIFontSize, styles.Foreground, geom.AlignLeft)
	if err != nil {
		return false, err
	}
	b.drawn = icon.Union(rect)
	return true, nil
}

// ShouldDraw implements View.
func (b *ButtonHint) ShouldDraw() bool { return b.dirty }

// SetShouldDraw implements View.
func (b *ButtonHint) SetShouldDraw() { b.dirty = true }

// HandleKeyEvent implements View. Hints are not interactive.
func (b *ButtonHint) HandleKeyEvent(input.KeyEvent, *command.Bus, *command.Bubble) (bool, error) {
	return false, nil
}

// Children implements View.
func (b *ButtonHint) Children() []View { return nil }

// BoundingBox implements View.
func (b *ButtonHint) BoundingBox(styles *stylesheet.Stylesheet) geom.Rect {
	d := styles.ButtonDiameter
	icon := geom.NewRect(b.point.X, b.point.Y, d, d)
	text := textExtent(geom.Point{X: icon.Right() + styles.ItemSpacing/2, Y: b.point.Y},
		b.label, styles.UIFontSize, geom.AlignLeft)
	return icon.Union(text)
}

// SetPosition implements View.
func (b *ButtonHint) SetPosition(p geom.Point) {
	if b.point == p {
		return
	}
	b.point = p
	b.dirty = true
}
