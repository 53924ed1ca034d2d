package view

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/logging"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
)

// Image displays a picture loaded from disk, lazily and at most once per
// path. A missing or unreadable file is a recoverable-local error: it is
// logged and the node renders an empty placeholder instead.
type Image struct {
	rect geom.Rect
	path string

	img    image.Image
	loaded bool
	dirty  bool
}

// NewImage constructs an image node occupying rect.
func NewImage(rect geom.Rect) *Image {
	return &Image{rect: rect, dirty: true}
}

// SetPath points the node at a new file. An empty path clears the image.
func (v *Image) SetPath(path string) {
	if v.path == path {
		return
	}
	v.path = path
	v.img = nil
	v.loaded = false
	v.dirty = true
}

// Path returns the current file path.
func (v *Image) Path() string { return v.path }

// Draw implements View.
func (v *Image) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !v.dirty {
		return false, nil
	}
	v.dirty = false
	if err := s.Clear(v.rect); err != nil {
		return false, err
	}
	if !v.loaded {
		v.load()
	}
	if v.img == nil {
		if err := s.FillRect(v.rect, styles.Disabled); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := s.DrawImage(geom.Point{X: v.rect.X, Y: v.rect.Y}, v.img); err != nil {
		return false, err
	}
	return true, nil
}

func (v *Image) load() {
	v.loaded = true
	if v.path == "" {
		return
	}
	f, err := os.Open(v.path)
	if err != nil {
		logging.Warnf("image: %v", err)
		return
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		logging.Warnf("image: decode %s: %v", v.path, err)
		return
	}
	v.img = img
}

// ShouldDraw implements View.
func (v *Image) ShouldDraw() bool { return v.dirty }

// SetShouldDraw implements View.
func (v *Image) SetShouldDraw() { v.dirty = true }

// HandleKeyEvent implements View. Images are not interactive.
func (v *Image) HandleKeyEvent(input.KeyEvent, *command.Bus, *command.Bubble) (bool, error) {
	return false, nil
}

// Children implements View.
func (v *Image) Children() []View { return nil }

// BoundingBox implements View.
func (v *Image) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return v.rect }

// SetPosition implements View.
func (v *Image) SetPosition(p geom.Point) {
	if v.rect.X == p.X && v.rect.Y == p.Y {
		return
	}
	v.rect.X = p.X
	v.rect.Y = p.Y
	v.dirty = true
}

func (v *Image) String() string {
	return fmt.Sprintf("Image(%s)", v.path)
}
