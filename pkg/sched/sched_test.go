package sched

import "testing"

func TestSubmitReplacesPending(t *testing.T) {
	var s Slot
	var ran []string
	s.Submit(func() { ran = append(ran, "first") })
	s.Submit(func() { ran = append(ran, "second") })
	s.Submit(func() { ran = append(ran, "third") })

	if !s.Flush() {
		t.Fatal("Flush ran nothing")
	}
	if len(ran) != 1 || ran[0] != "third" {
		t.Errorf("ran = %v, want only the latest submission", ran)
	}
	if s.Flush() {
		t.Error("second Flush ran a task, slot should be empty")
	}
}

func TestArmFiresOncePerTransition(t *testing.T) {
	var s Slot
	armed := 0
	s.Arm = func() { armed++ }

	s.Submit(func() {})
	s.Submit(func() {})
	if armed != 1 {
		t.Fatalf("armed %d times before flush, want 1", armed)
	}

	s.Flush()
	s.Submit(func() {})
	if armed != 2 {
		t.Errorf("armed %d times after flush+submit, want 2", armed)
	}
}

func TestCancelDiscardsWithoutRunning(t *testing.T) {
	var s Slot
	ran := false
	s.Submit(func() { ran = true })

	if !s.Cancel() {
		t.Error("Cancel reported no pending task")
	}
	if s.Flush() || ran {
		t.Error("canceled task still ran")
	}
	if s.Cancel() {
		t.Error("Cancel on empty slot reported a pending task")
	}
}

func TestPending(t *testing.T) {
	var s Slot
	if s.Pending() {
		t.Error("fresh slot reports pending")
	}
	s.Submit(func() {})
	if !s.Pending() {
		t.Error("slot with submitted task reports empty")
	}
	s.Flush()
	if s.Pending() {
		t.Error("flushed slot reports pending")
	}
}

func TestSubmitDuringFlushReArms(t *testing.T) {
	var s Slot
	armed := 0
	s.Arm = func() { armed++ }

	runs := 0
	s.Submit(func() {
		runs++
		s.Submit(func() { runs++ })
	})
	s.Flush()
	if runs != 1 {
		t.Fatalf("first flush ran %d tasks, want 1", runs)
	}
	if armed != 2 {
		t.Errorf("armed %d times, want 2 (resubmit from inside a flush re-arms)", armed)
	}
	s.Flush()
	if runs != 2 {
		t.Errorf("second flush did not run the resubmitted task")
	}
}

func TestNilSubmitIgnored(t *testing.T) {
	var s Slot
	s.Submit(nil)
	if s.Pending() {
		t.Error("nil submission left the slot pending")
	}
}
