package tui

import (
	"strings"

	"gridshelf/pkg/layout"
)

// Item is one rendered shelf entry. The view owns the items; the
// container only ever sees their handles.
type Item struct {
	Handle string
	Label  string
	W      int
	H      int
	Color  string
}

// ShelfView is the demo rendering layer. It implements both collaborator
// contracts: it receives placements and extents from the container and
// answers the scrollbar thickness query. In a cell terminal a scrollbar
// occupies exactly one column or row.
type ShelfView struct {
	theme Theme

	items map[string]*Item

	placements []layout.Placement
	parcel     int
	sticky     string

	contentW, contentH   int
	scrollH, scrollV     bool
	viewportW, viewportH int
	offset               int
}

// NewShelfView returns an empty view.
func NewShelfView(theme Theme) *ShelfView {
	return &ShelfView{theme: theme, items: make(map[string]*Item)}
}

// Apply implements shelf.PlacementApplier.
func (v *ShelfView) Apply(ps []layout.Placement, parcel int, sticky string) {
	v.placements = append(v.placements[:0], ps...)
	v.parcel = parcel
	v.sticky = sticky
	v.clampOffset()
}

// SetExtent implements shelf.ScrollExtentPublisher.
func (v *ShelfView) SetExtent(w, h int) {
	v.contentW, v.contentH = w, h
	v.clampOffset()
}

// SetScrollVisible implements shelf.ScrollExtentPublisher.
func (v *ShelfView) SetScrollVisible(horizontal, vertical bool) {
	v.scrollH, v.scrollV = horizontal, vertical
}

// ScrollbarThickness implements shelf.ScrollExtentPublisher.
func (v *ShelfView) ScrollbarThickness() int { return 1 }

// HasItem reports whether the view owns an item for handle; the container
// uses it as its structural-ownership precondition.
func (v *ShelfView) HasItem(handle string) bool {
	_, ok := v.items[handle]
	return ok
}

// AddItem registers an item with the view.
func (v *ShelfView) AddItem(it *Item) { v.items[it.Handle] = it }

// DropItem forgets an item.
func (v *ShelfView) DropItem(handle string) { delete(v.items, handle) }

// ItemCount returns the number of owned items.
func (v *ShelfView) ItemCount() int { return len(v.items) }

// SetViewport records the size the shelf is painted into.
func (v *ShelfView) SetViewport(w, h int) {
	v.viewportW, v.viewportH = w, h
	v.clampOffset()
}

// Scrolling reports whether a scroll affordance is showing.
func (v *ShelfView) Scrolling() bool { return v.scrollH || v.scrollV }

// ScrollBy moves the growth-axis offset and clamps it to the content.
func (v *ShelfView) ScrollBy(delta int) {
	v.offset += delta
	v.clampOffset()
}

// Offset returns the current growth-axis scroll offset.
func (v *ShelfView) Offset() int { return v.offset }

func (v *ShelfView) maxOffset() int {
	span := v.contentH - v.viewportH
	if v.scrollH {
		span = v.contentW - v.viewportW
	}
	if span < 0 {
		span = 0
	}
	return span
}

func (v *ShelfView) clampOffset() {
	if !v.Scrolling() {
		v.offset = 0
		return
	}
	if max := v.maxOffset(); v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
}

// itemRect positions an item inside its parcel according to the sticky
// sides: opposite sides stretch, a single side clings, no side centers.
func itemRect(p layout.Placement, parcel int, it *Item, sticky string) (x, y, w, h int) {
	w, h = it.W, it.H
	if w > parcel {
		w = parcel
	}
	if h > parcel {
		h = parcel
	}

	hasN := strings.ContainsRune(sticky, 'n')
	hasS := strings.ContainsRune(sticky, 's')
	hasE := strings.ContainsRune(sticky, 'e')
	hasW := strings.ContainsRune(sticky, 'w')

	switch {
	case hasE && hasW:
		w = parcel
		x = p.X
	case hasW:
		x = p.X
	case hasE:
		x = p.X + parcel - w
	default:
		x = p.X + (parcel-w)/2
	}
	switch {
	case hasN && hasS:
		h = parcel
		y = p.Y
	case hasN:
		y = p.Y
	case hasS:
		y = p.Y + parcel - h
	default:
		y = p.Y + (parcel-h)/2
	}
	return x, y, w, h
}

// Render paints the shelf into its viewport, sliced by the scroll offset,
// with a one-cell scrollbar along the far edge when requested.
func (v *ShelfView) Render() string {
	vw, vh := v.viewportW, v.viewportH
	if vw <= 0 || vh <= 0 {
		return ""
	}

	cw := v.contentW
	if cw < vw {
		cw = vw
	}
	ch := v.contentH
	if ch < vh {
		ch = vh
	}
	canvas := NewCanvas(cw, ch)
	for _, p := range v.placements {
		it, ok := v.items[p.Handle]
		if !ok {
			continue
		}
		x, y, w, h := itemRect(p, v.parcel, it, v.sticky)
		canvas.DrawBox(x, y, w, h, it.Label, it.Color)
	}

	switch {
	case v.scrollV:
		body := verticalSlice(canvas, v.offset, vw-1, vh)
		bar := v.renderVScrollbar(vh)
		return joinColumns(body, bar)
	case v.scrollH:
		// One row is reserved for the horizontal bar.
		lines := make([]string, 0, vh)
		for y := 0; y < vh-1; y++ {
			lines = append(lines, sliceLine(canvas, y, v.offset, vw))
		}
		lines = append(lines, v.renderHScrollbar(vw))
		return strings.Join(lines, "\n")
	default:
		return canvas.Render(0, vh)
	}
}

// verticalSlice renders rows [offset, offset+height) clipped to width.
func verticalSlice(c *Canvas, offset, width, height int) string {
	lines := make([]string, 0, height)
	for y := offset; y < offset+height; y++ {
		lines = append(lines, sliceLine(c, y, 0, width))
	}
	return strings.Join(lines, "\n")
}

// sliceLine renders one canvas row starting at column xoff, padded or
// clipped to width cells.
func sliceLine(c *Canvas, y, xoff, width int) string {
	sub := NewCanvas(width, 1)
	for x := 0; x < width; x++ {
		sx, sy := x+xoff, y
		if sx >= 0 && sy >= 0 && sx < c.w && sy < c.h {
			sub.set(x, 0, c.runes[sy][sx], c.colors[sy][sx])
		}
	}
	return sub.Render(0, 1)
}

func (v *ShelfView) renderVScrollbar(height int) string {
	thumbTop, thumbLen := scrollThumb(height, v.contentH, v.viewportH, v.offset)
	cells := make([]string, height)
	for y := 0; y < height; y++ {
		if y >= thumbTop && y < thumbTop+thumbLen {
			cells[y] = v.theme.Scrollbar.Render("█")
		} else {
			cells[y] = v.theme.Track.Render("░")
		}
	}
	return strings.Join(cells, "\n")
}

func (v *ShelfView) renderHScrollbar(width int) string {
	thumbTop, thumbLen := scrollThumb(width, v.contentW, v.viewportW, v.offset)
	var b strings.Builder
	for x := 0; x < width; x++ {
		if x >= thumbTop && x < thumbTop+thumbLen {
			b.WriteString(v.theme.Scrollbar.Render("█"))
		} else {
			b.WriteString(v.theme.Track.Render("░"))
		}
	}
	return b.String()
}

// scrollThumb maps the scroll state onto a track of span cells.
func scrollThumb(span, content, viewport, offset int) (top, length int) {
	if content <= 0 || content <= viewport {
		return 0, span
	}
	length = span * viewport / content
	if length < 1 {
		length = 1
	}
	maxOff := content - viewport
	if maxOff > 0 {
		top = (span - length) * offset / maxOff
	}
	if top+length > span {
		top = span - length
	}
	if top < 0 {
		top = 0
	}
	return top, length
}

// joinColumns zips two equal-height blocks side by side.
func joinColumns(left, right string) string {
	ll := strings.Split(left, "\n")
	rl := strings.Split(right, "\n")
	n := len(ll)
	if len(rl) > n {
		n = len(rl)
	}
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(ll) {
			l = ll[i]
		}
		if i < len(rl) {
			r = rl[i]
		}
		lines = append(lines, l+r)
	}
	return strings.Join(lines, "\n")
}
