// Package shelf implements the container side of the grid-flow layout
// system: per-instance configuration, the ordered child registry, and the
// scheduling glue that turns mutations into coalesced layout runs.
//
// A Container never paints or owns widgets. It emits computed placements
// to a PlacementApplier and content extents plus scrollbar decisions to a
// ScrollExtentPublisher; both are supplied by the rendering layer. All
// container mutation happens on the single control thread that drives the
// event loop.
package shelf

import (
	"fmt"
	"sort"

	"gridshelf/pkg/layout"
	"gridshelf/pkg/sched"
	"gridshelf/pkg/unit"
)

// PlacementApplier receives computed coordinates and moves the rendered
// items. Placements are parcel top-left corners; parcel and sticky tell
// the applier how each item sits inside its cell.
type PlacementApplier interface {
	Apply(placements []layout.Placement, parcel int, sticky string)
}

// ScrollExtentPublisher receives the scrollable content extents and the
// per-axis scrollbar decisions, and answers the synchronous scrollbar
// thickness query the correction pass depends on.
type ScrollExtentPublisher interface {
	SetExtent(w, h int)
	SetScrollVisible(horizontal, vertical bool)
	ScrollbarThickness() int
}

// Config assembles a Container.
type Config struct {
	// Name labels the container for lookup and logging.
	Name string
	// Requested is the size used until the rendering layer reports
	// realized dimensions through Resize.
	Requested layout.Size
	// Metric resolves length expressions; nil falls back to
	// unit.DefaultMetric.
	Metric unit.Resolver
	// Applier and Publisher are the rendering-layer collaborators.
	// Either may be nil, in which case that emission is skipped.
	Applier   PlacementApplier
	Publisher ScrollExtentPublisher
	// Owns is the structural-descendant precondition checked by Add.
	// nil accepts every handle.
	Owns func(handle string) bool
	// Arm is installed on the container's scheduling slot; the event
	// loop uses it to schedule a Flush.
	Arm func()
}

// Container is one layout instance: options, registry, and a single-slot
// scheduler, with no ambient global state.
type Container struct {
	id   string
	name string

	opts   layout.Options
	reg    *Registry
	slot   sched.Slot
	metric unit.Resolver

	applier   PlacementApplier
	publisher ScrollExtentPublisher
	owns      func(string) bool

	requested layout.Size
	realized  layout.Size
	last      layout.Result
	hasLast   bool
}

// New creates a container with default options.
func New(cfg Config) *Container {
	c := &Container{
		name:      cfg.Name,
		opts:      layout.DefaultOptions(),
		reg:       NewRegistry(),
		metric:    cfg.Metric,
		applier:   cfg.Applier,
		publisher: cfg.Publisher,
		owns:      cfg.Owns,
		requested: cfg.Requested,
	}
	c.slot.Arm = cfg.Arm
	return c
}

// Name returns the container's label.
func (c *Container) Name() string { return c.name }

// Add registers handle with its measured size at index. The index clamps
// (use End to append). The registry and layout are untouched on failure.
func (c *Container) Add(handle string, w, h, index int) error {
	if c.owns != nil && !c.owns(handle) {
		return fmt.Errorf("%q: %w", handle, ErrNotDescendant)
	}
	if err := c.reg.Add(layout.Child{Handle: handle, W: w, H: h}, index); err != nil {
		return err
	}
	c.schedule()
	return nil
}

// Remove evicts handle from the registry. The item itself is not
// destroyed.
func (c *Container) Remove(handle string) error {
	if err := c.reg.Remove(handle); err != nil {
		return err
	}
	c.schedule()
	return nil
}

// Clear evicts every child.
func (c *Container) Clear() {
	c.reg.Clear()
	c.schedule()
}

// ClearAt evicts the child at index i; out of range is an error and the
// registry is unchanged.
func (c *Container) ClearAt(i int) error {
	if err := c.reg.ClearAt(i); err != nil {
		return err
	}
	c.schedule()
	return nil
}

// Children returns the ordered handle snapshot.
func (c *Container) Children() []string {
	kids := c.reg.Children()
	out := make([]string, len(kids))
	for i, k := range kids {
		out[i] = k.Handle
	}
	return out
}

// SetChildSize records a fresh measurement for handle and schedules a
// recalculation.
func (c *Container) SetChildSize(handle string, w, h int) error {
	if err := c.reg.SetSize(handle, w, h); err != nil {
		return err
	}
	c.schedule()
	return nil
}

// Configure validates and applies the given option pairs in sorted key
// order, then schedules a recalculation. The first invalid pair stops
// processing; pairs applied before it keep their new values, the failing
// option keeps its previous one.
func (c *Container) Configure(pairs map[string]string) error {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	applied := false
	for _, name := range names {
		if err := c.opts.Set(name, pairs[name], c.metric); err != nil {
			if applied {
				c.schedule()
			}
			return err
		}
		applied = true
	}
	if applied {
		c.schedule()
	}
	return nil
}

// CGet returns the normalized current value of one option.
func (c *Container) CGet(name string) (string, error) {
	return c.opts.Get(name)
}

// Describe returns the descriptor for one option.
func (c *Container) Describe(name string) (layout.Descriptor, error) {
	return c.opts.Describe(name)
}

// Descriptors returns descriptors for every recognized option.
func (c *Container) Descriptors() []layout.Descriptor {
	return c.opts.Descriptors()
}

// Options returns the current configuration snapshot.
func (c *Container) Options() layout.Options { return c.opts }

// Resize records the realized viewport size and schedules a
// recalculation.
func (c *Container) Resize(w, h int) {
	c.realized = layout.Size{W: w, H: h}
	c.schedule()
}

// Relayout schedules a recalculation without any state change.
func (c *Container) Relayout() { c.schedule() }

// Pending reports whether a recalculation is scheduled but not yet run.
func (c *Container) Pending() bool { return c.slot.Pending() }

// Flush runs the pending recalculation, if any. The host event loop calls
// this once per turn; earlier superseded requests are already gone.
func (c *Container) Flush() bool { return c.slot.Flush() }

// Last returns the most recent completed recalculation, if any.
func (c *Container) Last() (layout.Result, bool) {
	return c.last, c.hasLast
}

func (c *Container) schedule() {
	c.slot.Submit(c.recalculate)
}

// Viewport returns the size the next recalculation will use: the realized
// size when known, the requested size otherwise.
func (c *Container) Viewport() layout.Size {
	if c.realized == (layout.Size{}) {
		return c.requested
	}
	return c.realized
}

// recalculate runs the layout engine against the current state and emits
// the outcome. With an empty registry nothing is computed or emitted.
func (c *Container) recalculate() {
	children := c.reg.Children()
	if len(children) == 0 {
		return
	}

	thickness := 0
	if c.publisher != nil {
		thickness = c.publisher.ScrollbarThickness()
	}

	res := layout.Compute(layout.Input{
		Viewport:           c.Viewport(),
		Children:           children,
		Options:            c.opts,
		ScrollbarThickness: thickness,
	})
	c.last = res
	c.hasLast = true

	if c.applier != nil {
		c.applier.Apply(res.Placements, res.Parcel, c.opts.Sticky)
	}
	if c.publisher != nil {
		c.publisher.SetExtent(res.ContentW, res.ContentH)
		if c.opts.Orientation == layout.Vertical {
			c.publisher.SetScrollVisible(false, res.NeedScroll)
		} else {
			c.publisher.SetScrollVisible(res.NeedScroll, false)
		}
	}
}
