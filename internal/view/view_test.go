package view

import (
	"testing"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// composite is a minimal container used to exercise the tree contract.
type composite struct {
	rect     geom.Rect
	children []View
	dirty    bool
}

func newComposite(rect geom.Rect, children ...View) *composite {
	return &composite{rect: rect, children: children, dirty: true}
}

func (c *composite) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	drawn := false
	if c.dirty {
		if err := s.Clear(c.rect); err != nil {
			return false, err
		}
		c.dirty = false
		drawn = true
	}
	d, err := DrawDirty(s, styles, c.children...)
	return drawn || d, err
}

func (c *composite) ShouldDraw() bool { return c.dirty || ShouldDrawAny(c.children...) }

func (c *composite) SetShouldDraw() {
	c.dirty = true
	for _, child := range c.children {
		child.SetShouldDraw()
	}
}

func (c *composite) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	for _, child := range c.children {
		consumed, err := child.HandleKeyEvent(ev, bus, bubble)
		if err != nil || consumed {
			return consumed, err
		}
	}
	return false, nil
}

func (c *composite) Children() []View                             { return c.children }
func (c *composite) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return c.rect }
func (c *composite) SetPosition(geom.Point)                       { panic(ErrRepositionUnsupported) }

func drawAll(t *testing.T, root View) {
	t.Helper()
	s := display.NewMemory(640, 480)
	if _, err := root.Draw(s, stylesheet.Default()); err != nil {
		t.Fatalf("draw: %v", err)
	}
}

func TestDirtyFlagsClearAfterOneDrawPass(t *testing.T) {
	leaf := NewLabel(geom.Point{X: 10, Y: 10}, "hello", geom.AlignLeft)
	mid := newComposite(geom.NewRect(0, 0, 320, 240), leaf)
	root := newComposite(geom.NewRect(0, 0, 640, 480), mid)

	if !root.ShouldDraw() {
		t.Fatalf("expected fresh tree to need drawing")
	}
	drawAll(t, root)
	if root.ShouldDraw() {
		t.Fatalf("expected clean tree after one draw pass")
	}
	if leaf.ShouldDraw() || mid.ShouldDraw() {
		t.Fatalf("expected descendants clean after draw")
	}
}

func TestLeafDirtinessPropagatesToAncestorQueries(t *testing.T) {
	leaf := NewLabel(geom.Point{X: 10, Y: 10}, "hello", geom.AlignLeft)
	mid := newComposite(geom.NewRect(0, 0, 320, 240), leaf)
	root := newComposite(geom.NewRect(0, 0, 640, 480), mid)
	drawAll(t, root)

	leaf.SetShouldDraw()
	if !mid.ShouldDraw() {
		t.Fatalf("expected dirty leaf to surface through parent")
	}
	if !root.ShouldDraw() {
		t.Fatalf("expected dirty leaf to surface through root")
	}
}

func TestParentDirtyWithCleanDescendants(t *testing.T) {
	leaf := NewLabel(geom.Point{X: 10, Y: 10}, "hello", geom.AlignLeft)
	root := newComposite(geom.NewRect(0, 0, 640, 480), leaf)
	drawAll(t, root)

	root.dirty = true
	if !root.ShouldDraw() {
		t.Fatalf("expected dirty parent to report ShouldDraw")
	}
	if leaf.ShouldDraw() {
		t.Fatalf("expected leaf to stay clean")
	}
}

func TestCompositeClearsBackgroundOncePerDirtyCycle(t *testing.T) {
	a := NewLabel(geom.Point{X: 10, Y: 10}, "a", geom.AlignLeft)
	b := NewLabel(geom.Point{X: 10, Y: 30}, "b", geom.AlignLeft)
	root := newComposite(geom.NewRect(0, 0, 640, 480), a, b)

	s := display.NewMemory(640, 480)
	styles := stylesheet.Default()
	if _, err := root.Draw(s, styles); err != nil {
		t.Fatalf("draw: %v", err)
	}
	rootClears := 0
	for _, op := range s.Ops {
		if op.Kind == "clear" && op.Rect == root.rect {
			rootClears++
		}
	}
	if rootClears != 1 {
		t.Fatalf("expected exactly one background clear, got %d", rootClears)
	}

	// a clean tree must not clear again
	s.Reset()
	if _, err := root.Draw(s, styles); err != nil {
		t.Fatalf("redraw: %v", err)
	}
	if s.Count("clear") != 0 {
		t.Fatalf("expected no clears on clean tree, got %d", s.Count("clear"))
	}
}

func TestSetPositionOnFixedCompositePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected reposition panic")
		}
	}()
	newComposite(geom.NewRect(0, 0, 10, 10)).SetPosition(geom.Point{X: 1})
}

func TestRowRightAlignmentLaysOutLeftward(t *testing.T) {
	styles := stylesheet.Default()
	a := NewLabel(geom.Zero(), "aaaa", geom.AlignLeft)
	b := NewLabel(geom.Zero(), "bb", geom.AlignLeft)
	row := NewRow(geom.Point{X: 200, Y: 10}, []View{a, b}, geom.AlignRight, 4)

	box := row.BoundingBox(styles)
	if box.Right() != 200 {
		t.Fatalf("expected row to end at anchor, got %d", box.Right())
	}
	aBox := a.BoundingBox(styles)
	bBox := b.BoundingBox(styles)
	if aBox.Right() > bBox.X {
		t.Fatalf("expected a left of b: a=%v b=%v", aBox, bBox)
	}
}

func TestListWrapsAndClampsCursor(t *testing.T) {
	l := NewList(geom.NewRect(0, 0, 200, 100), []string{"one", "two", "three"})
	bus := command.NewBus(4)

	if _, err := l.HandleKeyEvent(input.Press(input.KeyUp), bus, command.NewBubble()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if l.Cursor() != 2 {
		t.Fatalf("expected wrap to last entry, got %d", l.Cursor())
	}
	if _, err := l.HandleKeyEvent(input.Press(input.KeyDown), bus, command.NewBubble()); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if l.Cursor() != 0 {
		t.Fatalf("expected wrap to first entry, got %d", l.Cursor())
	}

	l.SetItems([]string{"only"})
	if l.Cursor() != 0 {
		t.Fatalf("expected clamped cursor, got %d", l.Cursor())
	}
}

func TestListEmptyConsumesNothing(t *testing.T) {
	l := NewList(geom.NewRect(0, 0, 200, 100), nil)
	consumed, err := l.HandleKeyEvent(input.Press(input.KeyDown), command.NewBus(1), command.NewBubble())
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if consumed {
		t.Fatalf("expected empty list to ignore input")
	}
	if l.Cursor() != -1 {
		t.Fatalf("expected cursor -1 for empty list, got %d", l.Cursor())
	}
}
