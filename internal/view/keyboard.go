package view

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// keyboard layout rows. The cursor wraps in both axes.
var keyboardRows = [][]rune{
	[]rune("1234567890"),
	[]rune("qwertyuiop"),
	[]rune("asdfghjkl-"),
	[]rune("zxcvbnm._ "),
}

// Keyboard is the on-screen text entry overlay. While visible it consumes
// every key event. Start submits the value by bubbling ValueChanged followed
// by CloseView; B on an empty value, or Menu at any time, cancels by
// bubbling CloseView alone.
type Keyboard struct {
	rect  geom.Rect
	key   string
	value []rune
	row   int
	col   int
	dirty bool
}

// NewKeyboard constructs a keyboard overlay covering rect. The key names
// the ValueChanged entry the submitted text is delivered under.
func NewKeyboard(rect geom.Rect, key, initial string) *Keyboard {
	return &Keyboard{rect: rect, key: key, value: []rune(initial), dirty: true}
}

// Value returns the text entered so far.
func (k *Keyboard) Value() string { return string(k.value) }

// Draw implements View. The overlay clears its whole rect once per dirty
// cycle, then draws the value line and the key grid.
func (k *Keyboard) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !k.dirty {
		return false, nil
	}
	k.dirty = false
	if err := s.Clear(k.rect); err != nil {
		return false, err
	}
	pad := styles.Padding
	value := geom.NewRect(k.rect.X+pad, k.rect.Y+pad, k.rect.W-2*pad, styles.UIFontSize+pad)
	if err := s.FillRect(value, styles.Disabled); err != nil {
		return false, err
	}
	if _, err := s.DrawText(geom.Point{X: value.X + pad/2, Y: value.Y + pad/2},
		string(k.value)+"_", styles.UIFontSize, styles.Foreground, geom.AlignLeft); err != nil {
		return false, err
	}

	cell := k.cellSize(styles)
	gridY := value.Bottom() + pad
	for r, row := range keyboardRows {
		for c, ch := range row {
			cellRect := geom.NewRect(k.rect.X+pad+c*cell, gridY+r*cell, cell-2, cell-2)
			bg := styles.Disabled
			fg := styles.Foreground
			if r == k.row && c == k.col {
				bg = styles.Highlight
				fg = styles.Background
			}
			if err := s.FillRect(cellRect, bg); err != nil {
				return false, err
			}
			if _, err := s.DrawText(cellRect.Center().Add(geom.Point{Y: -styles.UIFontSize / 2}),
				string(ch), styles.UIFontSize, fg, geom.AlignCenter); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

func (k *Keyboard) cellSize(styles *stylesheet.Stylesheet) int {
	cols := len(keyboardRows[0])
	cell := (k.rect.W - 2*styles.Padding) / cols
	if cell < styles.UIFontSize {
		cell = styles.UIFontSize
	}
	return cell
}

// ShouldDraw implements View.
func (k *Keyboard) ShouldDraw() bool { return k.dirty }

// SetShouldDraw implements View.
func (k *Keyboard) SetShouldDraw() { k.dirty = true }

// HandleKeyEvent implements View.
func (k *Keyboard) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	if ev.Kind == input.Released {
		// the overlay still swallows releases so nothing leaks past it
		return true, nil
	}
	switch ev.Key {
	case input.KeyUp:
		k.row = (k.row - 1 + len(keyboardRows)) % len(keyboardRows)
		k.clampCol()
		k.dirty = true
	case input.KeyDown:
		k.row = (k.row + 1) % len(keyboardRows)
		k.clampCol()
		k.dirty = true
	case input.KeyLeft:
		k.col = (k.col - 1 + len(keyboardRows[k.row])) % len(keyboardRows[k.row])
		k.dirty = true
	case input.KeyRight:
		k.col = (k.col + 1) % len(keyboardRows[k.row])
		k.dirty = true
	case input.KeyA:
		k.value = append(k.value, keyboardRows[k.row][k.col])
		k.dirty = true
	case input.KeyX:
		k.backspace()
	case input.KeyB:
		if len(k.value) > 0 {
			k.backspace()
		} else {
			bubble.Push(command.CloseView{})
		}
	case input.KeyStart:
		bubble.Push(command.ValueChanged{Key: k.key, Value: string(k.value)})
		bubble.Push(command.CloseView{})
	case input.KeyMenu:
		bubble.Push(command.CloseView{})
	}
	return true, nil
}

func (k *Keyboard) backspace() {
	if len(k.value) == 0 {
		return
	}
	k.value = k.value[:len(k.value)-1]
	k.dirty = true
}

func (k *Keyboard) clampCol() {
	if k.col >= len(keyboardRows[k.row]) {
		k.col = len(keyboardRows[k.row]) - 1
	}
}

// Children implements View.
func (k *Keyboard) Children() []View { return nil }

// BoundingBox implements View.
func (k *Keyboard) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return k.rect }

// SetPosition implements View. The keyboard is sized to its screen.
func (k *Keyboard) SetPosition(geom.Point) {
	panic(ErrRepositionUnsupported)
}
