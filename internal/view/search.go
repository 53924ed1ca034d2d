package view

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// SearchState tracks the lifecycle of the search overlay.
type SearchState int

const (
	SearchInactive SearchState = iota
	SearchActive
	SearchSearching
)

// valueKeySearch names the keyboard's ValueChanged entry.
const valueKeySearch = "search"

// Search wraps the keyboard overlay and turns a submitted value into a
// Search command for its parent. While active it owns the whole input path.
// Cancelling never produces a Search command: the keyboard's CloseView is
// consumed here and the overlay simply deactivates.
type Search struct {
	rect     geom.Rect
	keyboard *Keyboard
	state    SearchState
}

// NewSearch constructs an inactive search overlay for the given screen rect.
func NewSearch(rect geom.Rect) *Search {
	return &Search{rect: rect}
}

// Activate opens the keyboard with an empty query.
func (v *Search) Activate() {
	v.ActivateWithValue("")
}

// ActivateWithValue opens the keyboard pre-filled, used when refining a
// previous query.
func (v *Search) ActivateWithValue(initial string) {
	v.state = SearchActive
	v.keyboard = NewKeyboard(v.rect, valueKeySearch, initial)
}

// Deactivate dismisses the overlay.
func (v *Search) Deactivate() {
	v.state = SearchInactive
	v.keyboard = nil
}

// Active reports whether the overlay currently owns the input path.
func (v *Search) Active() bool { return v.state != SearchInactive }

// State returns the overlay lifecycle state.
func (v *Search) State() SearchState { return v.state }

// Draw implements View.
func (v *Search) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if v.state == SearchActive && v.keyboard != nil {
		return v.keyboard.Draw(s, styles)
	}
	return false, nil
}

// ShouldDraw implements View.
func (v *Search) ShouldDraw() bool {
	return v.state == SearchActive && v.keyboard != nil && v.keyboard.ShouldDraw()
}

// SetShouldDraw implements View.
func (v *Search) SetShouldDraw() {
	if v.state == SearchActive && v.keyboard != nil {
		v.keyboard.SetShouldDraw()
	}
}

// HandleKeyEvent implements View. The keyboard's bubbled commands are
// intercepted: ValueChanged becomes a Search command for the parent,
// CloseView deactivates the overlay and is dropped.
func (v *Search) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	if v.state != SearchActive || v.keyboard == nil {
		return false, nil
	}
	consumed, err := v.keyboard.HandleKeyEvent(ev, bus, bubble)
	if err != nil || !consumed {
		return consumed, err
	}

	var query string
	submitted := false
	bubble.Retain(func(c command.Command) bool {
		switch c := c.(type) {
		case command.ValueChanged:
			if c.Key == valueKeySearch {
				query = c.Value
				submitted = true
				return false
			}
			return true
		case command.CloseView:
			v.Deactivate()
			return false
		default:
			return true
		}
	})

	if submitted {
		v.state = SearchSearching
		bubble.Push(command.Search{Query: query})
	}
	return true, nil
}

// Children implements View.
func (v *Search) Children() []View {
	if v.keyboard == nil {
		return nil
	}
	return []View{v.keyboard}
}

// BoundingBox implements View.
func (v *Search) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return v.rect }

// SetPosition implements View.
func (v *Search) SetPosition(geom.Point) {
	panic(ErrRepositionUnsupported)
}
