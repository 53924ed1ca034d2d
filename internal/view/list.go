package view

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// List is a vertically scrolling selection list. Up/Down move the cursor,
// L/R page. Selection (A) is deliberately left to the owning screen, which
// reads Cursor after the event bubbles back.
type List struct {
	rect   geom.Rect
	items  []string
	cursor int
	offset int
	dirty  bool
}

// NewList constructs a list occupying rect.
func NewList(rect geom.Rect, items []string) *List {
	return &List{rect: rect, items: items, dirty: true}
}

// SetItems replaces the list content and clamps the cursor.
func (l *List) SetItems(items []string) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.offset = 0
	l.dirty = true
}

// Items returns the current entries.
func (l *List) Items() []string { return l.items }

// Cursor returns the selected index, -1 when the list is empty.
func (l *List) Cursor() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.cursor
}

// SetCursor moves the cursor, clamping to the valid range.
func (l *List) SetCursor(i int) {
	if len(l.items) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(l.items) {
		i = len(l.items) - 1
	}
	if i == l.cursor {
		return
	}
	l.cursor = i
	l.dirty = true
}

// Selected returns the selected entry and whether one exists.
func (l *List) Selected() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.items[l.cursor], true
}

func (l *List) lineHeight(styles *stylesheet.Stylesheet) int {
	return styles.UIFontSize + styles.ItemSpacing
}

func (l *List) visibleRows(styles *stylesheet.Stylesheet) int {
	rows := l.rect.H / l.lineHeight(styles)
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Draw implements View. The whole list rect is cleared once per dirty
// cycle, then visible rows are composited.
func (l *List) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !l.dirty {
		return false, nil
	}
	l.dirty = false
	if err := s.Clear(l.rect); err != nil {
		return false, err
	}
	rows := l.visibleRows(styles)
	l.scrollIntoView(rows)
	lh := l.lineHeight(styles)
	y := l.rect.Y
	for i := l.offset; i < len(l.items) && i < l.offset+rows; i++ {
		c := styles.Foreground
		if i == l.cursor {
			if err := s.FillRect(geom.NewRect(l.rect.X, y, l.rect.W, lh), styles.Highlight); err != nil {
				return false, err
			}
			c = styles.Background
		}
		p := geom.Point{X: l.rect.X + styles.Padding, Y: y + styles.ItemSpacing/2}
		if _, err := s.DrawText(p, l.items[i], styles.UIFontSize, c, geom.AlignLeft); err != nil {
			return false, err
		}
		y += lh
	}
	return true, nil
}

func (l *List) scrollIntoView(rows int) {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// ShouldDraw implements View.
func (l *List) ShouldDraw() bool { return l.dirty }

// SetShouldDraw implements View.
func (l *List) SetShouldDraw() { l.dirty = true }

// HandleKeyEvent implements View.
func (l *List) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	if len(l.items) == 0 {
		return false, nil
	}
	if ev.Kind == input.Released {
		return false, nil
	}
	switch ev.Key {
	case input.KeyUp:
		l.SetCursor((l.cursor - 1 + len(l.items)) % len(l.items))
		return true, nil
	case input.KeyDown:
		l.SetCursor((l.cursor + 1) % len(l.items))
		return true, nil
	case input.KeyL:
		l.SetCursor(l.cursor - 5)
		return true, nil
	case input.KeyR:
		l.SetCursor(l.cursor + 5)
		return true, nil
	}
	return false, nil
}

// Children implements View.
func (l *List) Children() []View { return nil }

// BoundingBox implements View.
func (l *List) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return l.rect }

// SetPosition implements View.
func (l *List) SetPosition(p geom.Point) {
	if l.rect.X == p.X && l.rect.Y == p.Y {
		return
	}
	l.rect.X = p.X
	l.rect.Y = p.Y
	l.dirty = true
}
