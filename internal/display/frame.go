package display

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/xXJSONDeruloXx/Allium/internal/geom"
)

// Frame is a software surface compositing into an RGBA buffer. It is the
// backing store for the SDL window on desktop and renders standalone in
// tests. Text uses the built-in bitmap face; proper font rasterisation is
// the platform layer's problem, not this package's.
type Frame struct {
	img        *image.RGBA
	background color.RGBA
	face       font.Face
}

// NewFrame allocates a w by h frame cleared to the background color.
func NewFrame(w, h int, background color.RGBA) *Frame {
	f := &Frame{
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		background: background,
		face:       basicfont.Face7x13,
	}
	f.Clear(f.Bounds())
	return f
}

// Bounds implements Surface.
func (f *Frame) Bounds() geom.Rect {
	b := f.img.Bounds()
	return geom.NewRect(b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// Clear implements Surface.
func (f *Frame) Clear(r geom.Rect) error {
	return f.FillRect(r, f.background)
}

// FillRect implements Surface.
func (f *Frame) FillRect(r geom.Rect, c color.RGBA) error {
	clipped := r.Intersect(f.Bounds())
	if clipped.Empty() {
		return nil
	}
	dst := image.Rect(clipped.X, clipped.Y, clipped.Right(), clipped.Bottom())
	draw.Draw(f.img, dst, &image.Uniform{C: c}, image.Point{}, draw.Src)
	return nil
}

// DrawText implements Surface. The size argument selects layout spacing
// only; the bitmap face has a single size.
func (f *Frame) DrawText(p geom.Point, text string, size int, c color.RGBA, align geom.Alignment) (geom.Rect, error) {
	if text == "" {
		return geom.Rect{}, nil
	}
	width := font.MeasureString(f.face, text).Ceil()
	height := f.face.Metrics().Height.Ceil()
	ascent := f.face.Metrics().Ascent.Ceil()

	x := p.X
	switch align {
	case geom.AlignCenter:
		x -= width / 2
	case geom.AlignRight:
		x -= width
	}

	d := font.Drawer{
		Dst:  f.img,
		Src:  &image.Uniform{C: c},
		Face: f.face,
		Dot:  fixed.P(x, p.Y+ascent),
	}
	d.DrawString(text)
	return geom.NewRect(x, p.Y, width, height), nil
}

// MeasureText returns the rectangle DrawText would occupy without drawing.
func (f *Frame) MeasureText(p geom.Point, text string, size int, align geom.Alignment) geom.Rect {
	if text == "" {
		return geom.Rect{}
	}
	width := font.MeasureString(f.face, text).Ceil()
	height := f.face.Metrics().Height.Ceil()
	x := p.X
	switch align {
	case geom.AlignCenter:
		x -= width / 2
	case geom.AlignRight:
		x -= width
	}
	return geom.NewRect(x, p.Y, width, height)
}

// DrawImage implements Surface.
func (f *Frame) DrawImage(p geom.Point, img image.Image) error {
	b := img.Bounds()
	dst := image.Rect(p.X, p.Y, p.X+b.Dx(), p.Y+b.Dy())
	draw.Draw(f.img, dst, img, b.Min, draw.Over)
	return nil
}

// Flush implements Surface. The frame itself has nowhere to present to;
// wrappers (the SDL window) upload the buffer here.
func (f *Frame) Flush() error { return nil }

// Snapshot implements Snapshotter.
func (f *Frame) Snapshot() *image.RGBA {
	cp := image.NewRGBA(f.img.Bounds())
	copy(cp.Pix, f.img.Pix)
	return cp
}

// RGBA exposes the backing buffer for presentation layers.
func (f *Frame) RGBA() *image.RGBA { return f.img }
