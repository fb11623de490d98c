// Package sched provides a single-slot pending-task primitive.
//
// A Slot holds at most one unexecuted task. Submitting a new task replaces
// any pending one, so bursts of triggers collapse into a single run that
// observes the most recent state. The host event loop drains the slot with
// Flush, typically once per loop turn.
package sched

import "sync"

// Slot coalesces task submissions into at most one pending task.
//
// The zero value is ready to use. Arm, when set, is invoked exactly once
// per empty-to-pending transition; hosts use it to schedule a Flush on
// their event loop. Arm must not call back into the Slot.
type Slot struct {
	mu      sync.Mutex
	pending func()

	// Arm is called (outside the lock) when Submit finds the slot empty.
	Arm func()
}

// Submit stores fn as the pending task, replacing any unexecuted prior
// task. The replaced task is discarded, never run.
func (s *Slot) Submit(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	wasEmpty := s.pending == nil
	s.pending = fn
	arm := s.Arm
	s.mu.Unlock()

	if wasEmpty && arm != nil {
		arm()
	}
}

// Flush runs the pending task, if any, and empties the slot. It reports
// whether a task ran. The task executes outside the lock; a Submit from
// inside the task re-arms the slot for a later turn.
func (s *Slot) Flush() bool {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Cancel discards the pending task without running it and reports whether
// one was pending.
func (s *Slot) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.pending != nil
	s.pending = nil
	return had
}

// Pending reports whether an unexecuted task is waiting.
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}
