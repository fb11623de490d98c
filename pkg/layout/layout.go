// Package layout computes responsive grid-flow layouts for scrollable
// containers.
//
// The container is bounded along one axis (the stretch axis, sized by the
// viewport) and unbounded along the other (the growth axis, which scrolls).
// Every child occupies one parcel, a uniform square cell derived from the
// largest child. Compute is a pure function: it takes a viewport, the
// ordered child sizes and an Options snapshot, and returns the grid shape,
// the content extents, the scrollbar decision and exact per-child
// placements. It never mutates state and never fails.
package layout

// Orientation selects which axis the container grows along.
type Orientation uint8

const (
	// Vertical grows along height: children fill across, then wrap down.
	Vertical Orientation = iota
	// Horizontal grows along width: children fill down, then wrap across.
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Corner identifies the start corner: the origin of the fill order and the
// per-child anchor.
type Corner uint8

const (
	NW Corner = iota
	NE
	SW
	SE
)

func (c Corner) String() string {
	switch c {
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	}
	return "nw"
}

// east reports whether the corner sits on the right edge.
func (c Corner) east() bool { return c == NE || c == SE }

// south reports whether the corner sits on the bottom edge.
func (c Corner) south() bool { return c == SW || c == SE }

// Size is a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Child is one item to lay out: an opaque handle plus its last-measured
// intrinsic size.
type Child struct {
	Handle string
	W      int
	H      int
}

// Placement is the computed position of one child: the top-left corner of
// its parcel, its grid cell, and the anchor corner the child grows from
// inside the parcel.
type Placement struct {
	Handle string
	X      int
	Y      int
	Row    int
	Col    int
	Anchor Corner
}

// Result is the outcome of one recalculation.
type Result struct {
	Parcel     int
	Cols       int
	Rows       int
	ContentW   int
	ContentH   int
	NeedScroll bool
	Placements []Placement
}
