package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionUp)
	f.Set(ActionRestart)
	if !f.Has(ActionUp) || !f.Has(ActionRestart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionDown) {
		t.Error("unset action reported as set")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionRestart) {
		t.Error("Clear should reset all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestFrameOf(t *testing.T) {
	f := FrameOf(ActionLeft, ActionRight)
	if !f.Has(ActionLeft) || !f.Has(ActionRight) || f.Has(ActionUp) {
		t.Errorf("FrameOf produced %v", f.Actions)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
