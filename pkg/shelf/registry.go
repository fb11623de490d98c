package shelf

import (
	"fmt"
	"math"

	"gridshelf/pkg/layout"
)

// End is an Add index that always appends.
const End = math.MaxInt

// Registry is an ordered, duplicate-free sequence of child handles plus
// their last-measured intrinsic sizes. It owns references only; the
// rendered items behind the handles are owned elsewhere and are never
// destroyed by registry eviction.
type Registry struct {
	entries []layout.Child
	index   map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Len returns the number of registered children.
func (r *Registry) Len() int { return len(r.entries) }

// Add inserts c at the given index. A negative index clamps to 0; an
// index at or beyond the current length (End included) appends. Adding a
// handle that is already present fails with ErrDuplicateChild.
func (r *Registry) Add(c layout.Child, at int) error {
	if _, ok := r.index[c.Handle]; ok {
		return fmt.Errorf("%q: %w", c.Handle, ErrDuplicateChild)
	}
	if at < 0 {
		at = 0
	}
	if at > len(r.entries) {
		at = len(r.entries)
	}
	r.entries = append(r.entries, layout.Child{})
	copy(r.entries[at+1:], r.entries[at:])
	r.entries[at] = c
	r.reindex(at)
	return nil
}

// Remove evicts the child with the given handle.
func (r *Registry) Remove(handle string) error {
	at, ok := r.index[handle]
	if !ok {
		return fmt.Errorf("%q: %w", handle, ErrChildNotFound)
	}
	if r.entries[at].Handle != handle {
		panic("shelf: registry index desynchronized")
	}
	r.entries = append(r.entries[:at], r.entries[at+1:]...)
	delete(r.index, handle)
	r.reindex(at)
	return nil
}

// Clear evicts every child. The underlying items are not destroyed.
func (r *Registry) Clear() {
	r.entries = nil
	r.index = make(map[string]int)
}

// ClearAt evicts exactly the child at index i, shifting subsequent
// children down by one. Unlike Add, an out-of-range index is an error.
func (r *Registry) ClearAt(i int) error {
	if i < 0 || i >= len(r.entries) {
		return fmt.Errorf("%d: %w", i, ErrIndexOutOfRange)
	}
	return r.Remove(r.entries[i].Handle)
}

// SetSize records a fresh intrinsic measurement for handle.
func (r *Registry) SetSize(handle string, w, h int) error {
	at, ok := r.index[handle]
	if !ok {
		return fmt.Errorf("%q: %w", handle, ErrChildNotFound)
	}
	r.entries[at].W = w
	r.entries[at].H = h
	return nil
}

// Children returns the ordered children as a snapshot copy.
func (r *Registry) Children() []layout.Child {
	out := make([]layout.Child, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) reindex(from int) {
	for i := from; i < len(r.entries); i++ {
		r.index[r.entries[i].Handle] = i
	}
}
