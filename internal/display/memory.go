package display

import (
	"image"
	"image/color"

	"github.com/xXJSONDeruloXx/Allium/internal/geom"
)

// Op records a single draw call made against a Memory surface.
type Op struct {
	Kind  string // "clear", "fill", "text", "image", "flush"
	Rect  geom.Rect
	Text  string
	Color color.RGBA
}

// Memory is a Surface that records draw calls instead of rasterising them.
// Tests assert on the recorded operations.
type Memory struct {
	bounds geom.Rect
	Ops    []Op
}

// NewMemory returns a recording surface with the given size.
func NewMemory(w, h int) *Memory {
	return &Memory{bounds: geom.NewRect(0, 0, w, h)}
}

// Bounds implements Surface.
func (m *Memory) Bounds() geom.Rect { return m.bounds }

// Clear implements Surface.
func (m *Memory) Clear(r geom.Rect) error {
	m.Ops = append(m.Ops, Op{Kind: "clear", Rect: r})
	return nil
}

// FillRect implements Surface.
func (m *Memory) FillRect(r geom.Rect, c color.RGBA) error {
	m.Ops = append(m.Ops, Op{Kind: "fill", Rect: r, Color: c})
	return nil
}

// DrawText implements Surface. Width is approximated from the rune count so
// layout-dependent assertions stay deterministic.
func (m *Memory) DrawText(p geom.Point, text string, size int, c color.RGBA, align geom.Alignment) (geom.Rect, error) {
	width := len([]rune(text)) * size / 2
	x := p.X
	switch align {
	case geom.AlignCenter:
		x -= width / 2
	case geom.AlignRight:
		x -= width
	}
	r := geom.NewRect(x, p.Y, width, size)
	m.Ops = append(m.Ops, Op{Kind: "text", Rect: r, Text: text, Color: c})
	return r, nil
}

// DrawImage implements Surface.
func (m *Memory) DrawImage(p geom.Point, img image.Image) error {
	b := img.Bounds()
	m.Ops = append(m.Ops, Op{Kind: "image", Rect: geom.NewRect(p.X, p.Y, b.Dx(), b.Dy())})
	return nil
}

// Flush implements Surface.
func (m *Memory) Flush() error {
	m.Ops = append(m.Ops, Op{Kind: "flush"})
	return nil
}

// Reset discards recorded operations.
func (m *Memory) Reset() {
	m.Ops = nil
}

// Count returns how many operations of the given kind were recorded.
func (m *Memory) Count(kind string) int {
	n := 0
	for _, op := range m.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
