package layout

// Input bundles everything one recalculation reads.
type Input struct {
	// Viewport is the realized size of the visible area, or the requested
	// size when the rendering layer has not realized true dimensions yet.
	Viewport Size
	// Children are the ordered items with their last-measured sizes.
	Children []Child
	// Options is the configuration snapshot for this run.
	Options Options
	// ScrollbarThickness is the rendering layer's answer to the scrollbar
	// thickness query, consumed by the single correction pass.
	ScrollbarThickness int
}

// line describes one pass of grid fitting: the cell count along the
// stretch axis, the derived count along the growth axis, and the resulting
// growth-axis content extent.
type line struct {
	primary      int
	secondary    int
	growthExtent int
}

// fit performs steps 4-6: first-pass stretch cell count, derived growth
// count, growth extent. All divisors are pre-clamped so fit is total.
func fit(availStretch, parcel, spacing, minpad, n int) line {
	primary := (availStretch - 2*minpad + spacing) / (parcel + spacing)
	if primary < 1 {
		primary = 1
	}
	secondary := (n + primary - 1) / primary
	return line{
		primary:      primary,
		secondary:    secondary,
		growthExtent: extent(secondary, parcel, spacing, minpad),
	}
}

// extent is the padded length of count cells laid along one axis.
func extent(count, parcel, spacing, minpad int) int {
	return count*parcel + (count-1)*spacing + 2*minpad
}

// Compute derives the full grid arrangement for in. It is re-run from
// scratch on every invocation; there is no incremental layout. An empty
// child list yields the zero Result and the caller emits nothing.
func Compute(in Input) Result {
	n := len(in.Children)
	if n == 0 {
		return Result{}
	}
	opts := in.Options

	// Parcel: uniform square cell from the largest child, floored at 1.
	parcel := 1
	for _, c := range in.Children {
		if c.W > parcel {
			parcel = c.W
		}
		if c.H > parcel {
			parcel = c.H
		}
	}

	// Axis roles.
	availStretch, availGrowth := in.Viewport.W, in.Viewport.H
	if opts.Orientation == Horizontal {
		availStretch, availGrowth = availGrowth, availStretch
	}
	if opts.MinSize > availStretch {
		availStretch = opts.MinSize
	}

	grid := fit(availStretch, parcel, opts.Spacing, opts.MinPad, n)

	// Scrollbar decision, with a single correction pass. The correction
	// is deliberately not iterated to a fixed point.
	needScroll := false
	if opts.Autoscroll && grid.growthExtent > availGrowth {
		needScroll = true
		availStretch -= in.ScrollbarThickness
		grid = fit(availStretch, parcel, opts.Spacing, opts.MinPad, n)
	}

	cols, rows := grid.primary, grid.secondary
	if opts.Orientation == Horizontal {
		cols, rows = rows, cols
	}

	res := Result{
		Parcel:     parcel,
		Cols:       cols,
		Rows:       rows,
		ContentW:   extent(cols, parcel, opts.Spacing, opts.MinPad),
		ContentH:   extent(rows, parcel, opts.Spacing, opts.MinPad),
		NeedScroll: needScroll,
		Placements: make([]Placement, 0, n),
	}

	// Coordinate frames per axis. The stretch axis is corner-aligned at
	// minpad, mirrored when the start corner sits on the far edge, and
	// overridden by centering. The growth axis mirrors against the larger
	// of the viewport and the content extent so a far-corner start stays
	// reachable by scrolling.
	stretchBlock := grid.primary*parcel + (grid.primary-1)*opts.Spacing
	growthBlock := grid.secondary*parcel + (grid.secondary-1)*opts.Spacing

	stretchMirror := opts.Start.east()
	growthMirror := opts.Start.south()
	if opts.Orientation == Horizontal {
		stretchMirror = opts.Start.south()
		growthMirror = opts.Start.east()
	}

	stretchOrigin := opts.MinPad
	if stretchMirror {
		stretchOrigin = availStretch - opts.MinPad - stretchBlock
	}
	if opts.Center {
		stretchOrigin = (availStretch - stretchBlock) / 2
	}

	growthRef := availGrowth
	if grid.growthExtent > growthRef {
		growthRef = grid.growthExtent
	}
	growthOrigin := opts.MinPad
	if growthMirror {
		growthOrigin = growthRef - opts.MinPad - growthBlock
	}

	step := parcel + opts.Spacing
	for i, c := range in.Children {
		si, gi := i%grid.primary, i/grid.primary

		soff := si * step
		if stretchMirror {
			soff = stretchBlock - (si+1)*parcel - si*opts.Spacing
		}
		goff := gi * step
		if growthMirror {
			goff = growthBlock - (gi+1)*parcel - gi*opts.Spacing
		}

		p := Placement{Handle: c.Handle, Anchor: opts.Start}
		if opts.Orientation == Vertical {
			p.Col, p.Row = si, gi
			p.X = stretchOrigin + soff
			p.Y = growthOrigin + goff
		} else {
			p.Row, p.Col = si, gi
			p.X = growthOrigin + goff
			p.Y = stretchOrigin + soff
		}
		res.Placements = append(res.Placements, p)
	}
	return res
}
