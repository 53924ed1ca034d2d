// Package display defines the draw target the view tree renders to. The
// shell only composes rectangles, text and images; rasterisation details
// live behind the Surface interface so the core runs identically against
// the software frame buffer, the SDL desktop window and the in-memory
// recorder used by tests.
package display

import (
	"image"
	"image/color"

	"github.com/xXJSONDeruloXx/Allium/internal/geom"
)

// Surface is the abstract display the view tree draws onto.
type Surface interface {
	// Bounds returns the drawable area.
	Bounds() geom.Rect

	// Clear invalidates a region, restoring it to the background color.
	// Composite nodes call it once per dirty cycle before compositing
	// children.
	Clear(r geom.Rect) error

	// FillRect fills a rectangle with a solid color.
	FillRect(r geom.Rect, c color.RGBA) error

	// DrawText renders a line of text anchored at p according to align.
	// It returns the rectangle the text occupied.
	DrawText(p geom.Point, text string, size int, c color.RGBA, align geom.Alignment) (geom.Rect, error)

	// DrawImage blits an image with its top-left corner at p.
	DrawImage(p geom.Point, img image.Image) error

	// Flush presents everything drawn since the previous Flush.
	Flush() error
}

// Snapshotter is implemented by surfaces that can hand out a copy of the
// current frame, used by the screenshot capture sequence.
type Snapshotter interface {
	Snapshot() *image.RGBA
}
