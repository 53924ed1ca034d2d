package view

import (
	"time"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// Toast shows a transient message along the bottom of the screen. A zero
// duration keeps the message up until it is replaced or dismissed.
type Toast struct {
	anchor  geom.Point
	text    string
	expires time.Time
	dirty   bool
	drawn   geom.Rect
}

// NewToast constructs a toast anchored at the bottom-center point.
func NewToast(anchor geom.Point) *Toast {
	return &Toast{anchor: anchor}
}

// Show replaces the toast message. d <= 0 keeps it up indefinitely.
func (t *Toast) Show(text string, d time.Duration, now time.Time) {
	t.text = text
	if d > 0 {
		t.expires = now.Add(d)
	} else {
		t.expires = time.Time{}
	}
	t.dirty = true
}

// Dismiss clears the toast.
func (t *Toast) Dismiss() {
	if t.text == "" {
		return
	}
	t.text = ""
	t.expires = time.Time{}
	t.dirty = true
}

// Tick expires the toast when its deadline passed and reports whether the
// toast is still visible.
func (t *Toast) Tick(now time.Time) bool {
	if t.text != "" && !t.expires.IsZero() && now.After(t.expires) {
		t.Dismiss()
	}
	return t.text != ""
}

// Visible reports whether a message is showing.
func (t *Toast) Visible() bool { return t.text != "" }

// Draw implements View.
func (t *Toast) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !t.dirty {
		return false, nil
	}
	t.dirty = false
	if !t.drawn.Empty() {
		if err := s.Clear(t.drawn); err != nil {
			return false, err
		}
		t.drawn = geom.Rect{}
	}
	if t.text == "" {
		return true, nil
	}
	pad := styles.Padding
	extent := textExtent(t.anchor, t.text, styles.UIFontSize, geom.AlignCenter)
	box := geom.NewRect(extent.X-pad, extent.Y-pad/2, extent.W+2*pad, extent.H+pad)
	if err := s.FillRect(box, styles.Highlight); err != nil {
		return false, err
	}
	if _, err := s.DrawText(t.anchor, t.text, styles.UIFontSize, styles.Background, geom.AlignCenter); err != nil {
		return false, err
	}
	t.drawn = box
	return true, nil
}

// ShouldDraw implements View.
func (t *Toast) ShouldDraw() bool { return t.dirty }

// SetShouldDraw implements View.
func (t *Toast) SetShouldDraw() { t.dirty = true }

// HandleKeyEvent implements View. Toasts are not interactive.
func (t *Toast) HandleKeyEvent(input.KeyEvent, *command.Bus, *command.Bubble) (bool, error) {
	return false, nil
}

// Children implements View.
func (t *Toast) Children() []View { return nil }

// BoundingBox implements View.
func (t *Toast) BoundingBox(styles *stylesheet.Stylesheet) geom.Rect {
	if t.text == "" {
		return geom.Rect{}
	}
	return textExtent(t.anchor, t.text, styles.UIFontSize, geom.AlignCenter)
}

// SetPosition implements View.
func (t *Toast) SetPosition(p geom.Point) {
	if t.anchor == p {
		return
	}
	t.anchor = p
	t.dirty = true
}
