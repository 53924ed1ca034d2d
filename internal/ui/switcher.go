package ui

import (
	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/screenshot"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
	"github.com/xXJSONDeruloXx/Allium/internal/view"
)

// Switcher is the quick-resume carousel: recently played games shown three
// at a time with a save-state preview for the one in the middle. While open
// it owns the whole input path; A resumes the highlighted game (handled by
// the launcher root), B dismisses.
type Switcher struct {
	rect          geom.Rect
	entries       []Entry
	index         int
	preview       *view.Image
	screenshotDir string
	dirty         bool
}

// NewSwitcher builds the carousel over the given entries, most recent
// first. The preview is resolved against the screenshot directory.
func NewSwitcher(rect geom.Rect, entries []Entry, screenshotDir string) *Switcher {
	side := rect.H / 2
	preview := geom.NewRect(rect.X+(rect.W-side)/2, rect.Y+rect.H/6, side, side)
	s := &Switcher{
		rect:          rect,
		entries:       entries,
		preview:       view.NewImage(preview),
		screenshotDir: screenshotDir,
		dirty:         true,
	}
	s.updatePreview()
	return s
}

// Selected returns the highlighted entry.
func (s *Switcher) Selected() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[s.index], true
}

func (s *Switcher) updatePreview() {
	e, ok := s.Selected()
	if !ok {
		s.preview.SetPath("")
		return
	}
	path, _ := screenshot.Lookup(s.screenshotDir, e.Path, e.Core, 0)
	s.preview.SetPath(path)
}

func (s *Switcher) name(offset int) string {
	if len(s.entries) == 0 {
		return ""
	}
	i := (s.index + offset + len(s.entries)) % len(s.entries)
	if offset != 0 && i == s.index {
		return ""
	}
	return s.entries[i].Name
}

// Draw implements view.View.
func (s *Switcher) Draw(surface display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	if !s.ShouldDraw() {
		return false, nil
	}
	if err := surface.FillRect(s.rect, styles.Background); err != nil {
		return false, err
	}
	center := s.rect.Center()
	nameY := s.rect.Bottom() - s.rect.H/4
	if len(s.entries) == 0 {
		if _, err := surface.DrawText(geom.Point{X: center.X, Y: nameY}, "Nothing played yet", styles.UIFontSize, styles.Disabled, geom.AlignCenter); err != nil {
			return false, err
		}
	} else {
		if _, err := surface.DrawText(geom.Point{X: s.rect.X + styles.Padding, Y: nameY}, s.name(-1), styles.TabFontSize(), styles.Disabled, geom.AlignLeft); err != nil {
			return false, err
		}
		if _, err := surface.DrawText(geom.Point{X: center.X, Y: nameY}, s.name(0), styles.UIFontSize, styles.Highlight, geom.AlignCenter); err != nil {
			return false, err
		}
		if _, err := surface.DrawText(geom.Point{X: s.rect.Right() - styles.Padding, Y: nameY}, s.name(1), styles.TabFontSize(), styles.Disabled, geom.AlignRight); err != nil {
			return false, err
		}
		if _, err := s.preview.Draw(surface, styles); err != nil {
			return false, err
		}
	}
	s.dirty = false
	return true, nil
}

// ShouldDraw implements view.View.
func (s *Switcher) ShouldDraw() bool { return s.dirty || s.preview.ShouldDraw() }

// SetShouldDraw implements view.View.
func (s *Switcher) SetShouldDraw() {
	s.dirty = true
	s.preview.SetShouldDraw()
}

// HandleKeyEvent implements view.View. The carousel consumes every event
// while open so nothing leaks to the views beneath it.
func (s *Switcher) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	if ev.Kind == input.Released {
		return true, nil
	}
	switch ev.Key {
	case input.KeyLeft:
		s.move(-1)
	case input.KeyRight:
		s.move(1)
	case input.KeyB, input.KeyMenu:
		bubble.Push(command.CloseView{})
	}
	return true, nil
}

func (s *Switcher) move(delta int) {
	if len(s.entries) < 2 {
		return
	}
	s.index = (s.index + delta + len(s.entries)) % len(s.entries)
	s.updatePreview()
	s.dirty = true
}

// Children implements view.View.
func (s *Switcher) Children() []view.View { return []view.View{s.preview} }

// BoundingBox implements view.View.
func (s *Switcher) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return s.rect }

// SetPosition implements view.View.
func (s *Switcher) SetPosition(geom.Point) {
	panic(view.ErrRepositionUnsupported)
}
