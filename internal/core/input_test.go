package core

import "testing"

func TestActionIsMovement(t *testing.T) {
	for _, a := range MovementActions {
		if !a.IsMovement() {
			t.Errorf("%v should be a movement action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionBack, ActionRestart, ActionQuit, ActionPause} {
		if a.IsMovement() {
			t.Errorf("%v should not be a movement action", a)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) || f.Has(ActionDown) {
		t.Errorf("frame = %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear left actions behind")
	}
	if !clone.Has(ActionUp) || !clone.Has(ActionPause) {
		t.Error("Clone shares state with the original")
	}
}
