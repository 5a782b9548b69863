package core

import "testing"

func TestInputFrameHoldRelease(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)
	f.Release(ActionFire)

	if !f.IsHeld(ActionLeft) {
		t.Error("Left should be held")
	}
	if f.IsHeld(ActionFire) {
		t.Error("Fire should not be held")
	}
	if !f.JustReleased(ActionFire) {
		t.Error("Fire should be released")
	}

	f.ClearReleased()
	if f.JustReleased(ActionFire) {
		t.Error("ClearReleased should drop releases")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("ClearReleased should keep holds")
	}
}

func TestInputFrameMerge(t *testing.T) {
	pending := NewInputFrame()
	pending.Hold(ActionLeft)
	pending.Release(ActionFire)

	next := NewInputFrame()
	next.Hold(ActionRight)

	pending.Merge(next)

	if pending.IsHeld(ActionLeft) {
		t.Error("Merge should replace holds")
	}
	if !pending.IsHeld(ActionRight) {
		t.Error("Merge should take the newer holds")
	}
	if !pending.JustReleased(ActionFire) {
		t.Error("Merge should keep unconsumed releases")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.IsHeld(ActionLeft) || f.JustReleased(ActionFire) {
		t.Error("zero frame should report nothing")
	}
	f.Release(ActionFire)
	if !f.JustReleased(ActionFire) {
		t.Error("Release on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
