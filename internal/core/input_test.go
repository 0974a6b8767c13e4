package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone) // ignored
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	got := f.Actions()
	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() len = %d, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotate) {
		t.Error("Has(ActionRotate) should be true")
	}
	if f.Has(ActionHardDrop) {
		t.Error("Has(ActionHardDrop) should be false")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHardDrop)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionHardDrop) {
		t.Error("Clear() should drop recorded actions")
	}
	if !clone.Has(ActionHardDrop) {
		t.Error("Clone() should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:     "None",
		ActionSoftDrop: "SoftDrop",
		ActionToggleAI: "ToggleAI",
		Action(99):     "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), want)
		}
	}
}
