package layout

import (
	"fmt"
	"reflect"
	"testing"
)

func uniformChildren(n, w, h int) []Child {
	out := make([]Child, n)
	for i := range out {
		out[i] = Child{Handle: fmt.Sprintf("c%d", i), W: w, H: h}
	}
	return out
}

func baseOptions() Options {
	o := DefaultOptions()
	o.Spacing = 2
	o.MinPad = 5
	return o
}

func TestComputeEmptyRegistry(t *testing.T) {
	res := Compute(Input{Viewport: Size{320, 200}, Options: DefaultOptions()})
	if !reflect.DeepEqual(res, Result{}) {
		t.Errorf("empty child list produced %+v, want zero Result", res)
	}
}

func TestComputeFittingShelf(t *testing.T) {
	res := Compute(Input{
		Viewport: Size{320, 200},
		Children: uniformChildren(15, 40, 40),
		Options:  baseOptions(),
	})

	if res.Parcel != 40 {
		t.Errorf("parcel = %d, want 40", res.Parcel)
	}
	if res.Cols != 7 || res.Rows != 3 {
		t.Errorf("grid = %dx%d, want 7x3", res.Cols, res.Rows)
	}
	if res.ContentW != 302 || res.ContentH != 134 {
		t.Errorf("content = %dx%d, want 302x134", res.ContentW, res.ContentH)
	}
	if res.NeedScroll {
		t.Error("NeedScroll = true for content that fits the viewport")
	}

	wantAt := map[int][2]int{
		0:  {5, 5},
		7:  {5, 47},
		14: {5, 89},
	}
	for i, want := range wantAt {
		p := res.Placements[i]
		if p.X != want[0] || p.Y != want[1] {
			t.Errorf("child %d at (%d,%d), want (%d,%d)", i, p.X, p.Y, want[0], want[1])
		}
	}
	if p := res.Placements[14]; p.Row != 2 || p.Col != 0 {
		t.Errorf("child 14 in cell (%d,%d), want (2,0)", p.Row, p.Col)
	}
}

func TestComputeScrollbarCorrection(t *testing.T) {
	in := Input{
		Viewport:           Size{320, 200},
		Children:           uniformChildren(40, 40, 40),
		Options:            baseOptions(),
		ScrollbarThickness: 20,
	}
	res := Compute(in)

	if !res.NeedScroll {
		t.Fatal("NeedScroll = false, want true for 40 children in 320x200")
	}
	// Correction recomputes with 320-20 available: floor((300-10+2)/42) = 6.
	if res.Cols != 6 {
		t.Errorf("corrected cols = %d, want 6", res.Cols)
	}
	if res.Rows != 7 {
		t.Errorf("corrected rows = %d, want 7", res.Rows)
	}

	// A thinner scrollbar keeps all seven columns: floor((302-10+2)/42) = 7.
	in.ScrollbarThickness = 18
	res = Compute(in)
	if !res.NeedScroll {
		t.Fatal("NeedScroll = false with 18px scrollbar")
	}
	if res.Cols != 7 || res.Rows != 6 {
		t.Errorf("grid with 18px scrollbar = %dx%d, want 7x6", res.Cols, res.Rows)
	}
}

func TestComputeAutoscrollDisabled(t *testing.T) {
	opts := baseOptions()
	opts.Autoscroll = false
	res := Compute(Input{
		Viewport:           Size{320, 200},
		Children:           uniformChildren(40, 40, 40),
		Options:            opts,
		ScrollbarThickness: 20,
	})
	if res.NeedScroll {
		t.Error("NeedScroll = true with autoscroll disabled")
	}
	if res.Cols != 7 {
		t.Errorf("cols = %d, want 7 (no correction pass)", res.Cols)
	}
}

func TestComputeOrderPreservation(t *testing.T) {
	res := Compute(Input{
		Viewport: Size{320, 200},
		Children: uniformChildren(15, 40, 40),
		Options:  baseOptions(),
	})
	for i, p := range res.Placements {
		if p.Row != i/res.Cols || p.Col != i%res.Cols {
			t.Errorf("child %d in cell (%d,%d), want (%d,%d)",
				i, p.Row, p.Col, i/res.Cols, i%res.Cols)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	in := Input{
		Viewport:           Size{317, 191},
		Children:           uniformChildren(23, 31, 17),
		Options:            baseOptions(),
		ScrollbarThickness: 14,
	}
	first := Compute(in)
	second := Compute(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("consecutive runs differ:\n%+v\n%+v", first, second)
	}
}

func TestComputeHorizontalMirror(t *testing.T) {
	in := Input{
		Viewport: Size{320, 200},
		Children: uniformChildren(15, 40, 40),
		Options:  baseOptions(),
	}
	nw := Compute(in)

	in.Options.Start = NE
	ne := Compute(in)

	availW, minpad, parcel := 320, 5, 40
	for i := range nw.Placements {
		wantX := availW - minpad - parcel - (nw.Placements[i].X - minpad)
		if got := ne.Placements[i].X; got != wantX {
			t.Errorf("child %d: ne x = %d, want mirror %d", i, got, wantX)
		}
		if ne.Placements[i].Y != nw.Placements[i].Y {
			t.Errorf("child %d: ne y = %d, want unchanged %d",
				i, ne.Placements[i].Y, nw.Placements[i].Y)
		}
	}
}

func TestComputeVerticalMirror(t *testing.T) {
	in := Input{
		Viewport: Size{320, 200},
		Children: uniformChildren(15, 40, 40),
		Options:  baseOptions(),
	}
	nw := Compute(in)

	in.Options.Start = SW
	sw := Compute(in)

	availH, minpad, parcel := 200, 5, 40
	for i := range nw.Placements {
		wantY := availH - minpad - parcel - (nw.Placements[i].Y - minpad)
		if got := sw.Placements[i].Y; got != wantY {
			t.Errorf("child %d: sw y = %d, want mirror %d", i, got, wantY)
		}
		if sw.Placements[i].X != nw.Placements[i].X {
			t.Errorf("child %d: sw x changed", i)
		}
	}

	// Child 0 sits one parcel above the bottom padding.
	if got, want := sw.Placements[0].Y, availH-minpad-parcel; got != want {
		t.Errorf("sw child 0 y = %d, want %d", got, want)
	}
}

func TestComputeHorizontalOrientation(t *testing.T) {
	opts := baseOptions()
	opts.Orientation = Horizontal
	res := Compute(Input{
		Viewport: Size{200, 320},
		Children: uniformChildren(15, 40, 40),
		Options:  opts,
	})

	// Stretch axis is now height: 7 rows, 3 columns.
	if res.Rows != 7 || res.Cols != 3 {
		t.Fatalf("grid = %dx%d (cols x rows), want 3x7", res.Cols, res.Rows)
	}
	if res.ContentW != 134 || res.ContentH != 302 {
		t.Errorf("content = %dx%d, want 134x302", res.ContentW, res.ContentH)
	}

	// Fill down, then wrap across.
	if p := res.Placements[1]; p.Row != 1 || p.Col != 0 || p.X != 5 || p.Y != 47 {
		t.Errorf("child 1 = %+v, want cell (1,0) at (5,47)", p)
	}
	if p := res.Placements[7]; p.Row != 0 || p.Col != 1 || p.X != 47 || p.Y != 5 {
		t.Errorf("child 7 = %+v, want cell (0,1) at (47,5)", p)
	}
}

func TestComputeCentering(t *testing.T) {
	opts := baseOptions()
	opts.Center = true
	res := Compute(Input{
		Viewport: Size{320, 200},
		Children: uniformChildren(14, 40, 40),
		Options:  opts,
	})

	// Block spans 7*40 + 6*2 = 292; leftover 28 splits to 14 per side.
	if p := res.Placements[0]; p.X != 14 {
		t.Errorf("centered child 0 x = %d, want 14", p.X)
	}
	// Growth axis is unaffected by centering.
	if p := res.Placements[0]; p.Y != 5 {
		t.Errorf("centered child 0 y = %d, want 5", p.Y)
	}
	if p := res.Placements[7]; p.Y != 47 {
		t.Errorf("centered child 7 y = %d, want 47", p.Y)
	}
}

func TestComputeMinSizeFloorsStretch(t *testing.T) {
	opts := baseOptions()
	opts.MinSize = 320
	res := Compute(Input{
		Viewport: Size{100, 200},
		Children: uniformChildren(15, 40, 40),
		Options:  opts,
	})
	if res.Cols != 7 {
		t.Errorf("cols = %d, want 7 (stretch floored to 320)", res.Cols)
	}
}

func TestComputeTotalOverDegenerateInputs(t *testing.T) {
	viewports := []Size{{0, 0}, {1, 1}, {3, 5}, {320, 200}, {10000, 40}, {40, 10000}}
	counts := []int{1, 2, 7, 40}
	childSizes := []Size{{0, 0}, {1, 1}, {40, 40}, {13, 61}}

	for _, vp := range viewports {
		for _, n := range counts {
			for _, cs := range childSizes {
				for _, orient := range []Orientation{Vertical, Horizontal} {
					opts := baseOptions()
					opts.Orientation = orient
					res := Compute(Input{
						Viewport:           vp,
						Children:           uniformChildren(n, cs.W, cs.H),
						Options:            opts,
						ScrollbarThickness: 18,
					})
					if res.Parcel < 1 {
						t.Fatalf("vp=%v n=%d cs=%v: parcel = %d", vp, n, cs, res.Parcel)
					}
					if res.Cols < 1 || res.Rows < 1 {
						t.Fatalf("vp=%v n=%d cs=%v: grid %dx%d", vp, n, cs, res.Cols, res.Rows)
					}
					if res.Cols*res.Rows < n {
						t.Fatalf("vp=%v n=%d cs=%v: %d cells for %d children",
							vp, n, cs, res.Cols*res.Rows, n)
					}
					if len(res.Placements) != n {
						t.Fatalf("vp=%v n=%d: %d placements", vp, n, len(res.Placements))
					}
				}
			}
		}
	}
}

func TestComputeMixedChildSizesShareOneParcel(t *testing.T) {
	res := Compute(Input{
		Viewport: Size{320, 200},
		Children: []Child{
			{Handle: "small", W: 8, H: 8},
			{Handle: "wide", W: 50, H: 10},
			{Handle: "tall", W: 10, H: 44},
		},
		Options: baseOptions(),
	})
	if res.Parcel != 50 {
		t.Errorf("parcel = %d, want 50 (max over max(w,h))", res.Parcel)
	}
	// All three land in one row at parcel multiples.
	for i, wantX := range []int{5, 57, 109} {
		if p := res.Placements[i]; p.X != wantX || p.Y != 5 {
			t.Errorf("child %d at (%d,%d), want (%d,5)", i, p.X, p.Y, wantX)
		}
	}
}
