package ui

import (
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/xXJSONDeruloXx/Allium/internal/command"
	"github.com/xXJSONDeruloXx/Allium/internal/display"
	"github.com/xXJSONDeruloXx/Allium/internal/geom"
	"github.com/xXJSONDeruloXx/Allium/internal/input"
	"github.com/xXJSONDeruloXx/Allium/internal/stylesheet"
	"github.com/xXJSONDeruloXx/Allium/internal/view"
)

// Results presents the entries matching a search query, best match first.
// B closes the view, Y reopens the keyboard to refine the query; selection
// is handled by the launcher root like any other entry list.
type Results struct {
	rect    geom.Rect
	query   string
	matches []Entry
	list    *view.List
}

// NewResults ranks pool against query with fuzzy matching and builds the
// result list. An empty match set still yields a usable (empty) view.
func NewResults(rect geom.Rect, query string, pool []Entry) *Results {
	names := make([]string, len(pool))
	for i, e := range pool {
		names[i] = e.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	matches := make([]Entry, len(ranks))
	items := make([]string, len(ranks))
	for i, rank := range ranks {
		matches[i] = pool[rank.OriginalIndex]
		items[i] = matches[i].Name
	}

	listRect := geom.NewRect(rect.X, rect.Y+rect.H/8, rect.W, rect.H-rect.H/8)
	return &Results{
		rect:    rect,
		query:   query,
		matches: matches,
		list:    view.NewList(listRect, items),
	}
}

// Query returns the query the view was built from.
func (r *Results) Query() string { return r.query }

// Selected returns the entry under the cursor.
func (r *Results) Selected() (Entry, bool) {
	i := r.list.Cursor()
	if i < 0 || i >= len(r.matches) {
		return Entry{}, false
	}
	return r.matches[i], true
}

// Draw implements view.View.
func (r *Results) Draw(s display.Surface, styles *stylesheet.Stylesheet) (bool, error) {
	drawn := false
	if r.ShouldDraw() {
		header := fmt.Sprintf("%d results for %q", len(r.matches), r.query)
		if _, err := s.DrawText(geom.Point{X: r.rect.X, Y: r.rect.Y}, header, styles.UIFontSize, styles.Highlight, geom.AlignLeft); err != nil {
			return false, err
		}
		drawn = true
	}
	d, err := r.list.Draw(s, styles)
	return drawn || d, err
}

// ShouldDraw implements view.View.
func (r *Results) ShouldDraw() bool { return r.list.ShouldDraw() }

// SetShouldDraw implements view.View.
func (r *Results) SetShouldDraw() { r.list.SetShouldDraw() }

// HandleKeyEvent implements view.View.
func (r *Results) HandleKeyEvent(ev input.KeyEvent, bus *command.Bus, bubble *command.Bubble) (bool, error) {
	consumed, err := r.list.HandleKeyEvent(ev, bus, bubble)
	if err != nil || consumed {
		return consumed, err
	}
	if ev.Kind != input.Pressed {
		return false, nil
	}
	switch ev.Key {
	case input.KeyB, input.KeyMenu:
		bubble.Push(command.CloseView{})
		return true, nil
	case input.KeyY:
		bubble.Push(command.StartSearch{})
		return true, nil
	}
	return false, nil
}

// Children implements view.View.
func (r *Results) Children() []view.View { return []view.View{r.list} }

// BoundingBox implements view.View.
func (r *Results) BoundingBox(*stylesheet.Stylesheet) geom.Rect { return r.rect }

// SetPosition implements view.View.
func (r *Results) SetPosition(geom.Point) {
	panic(view.ErrRepositionUnsupported)
}
