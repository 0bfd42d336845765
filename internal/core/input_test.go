package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()

	if _, ok := f.Direction(); ok {
		t.Error("Empty frame should have no direction")
	}

	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	dir, ok := f.Direction()
	if !ok || dir != ActionLeft {
		t.Errorf("Direction() = %v, %v, expected Left (first press wins)", dir, ok)
	}
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Has should report every action set this frame")
	}

	clone := f.Clone()
	f.Clear()

	if _, ok := f.Direction(); ok {
		t.Error("Clear should drop the direction")
	}
	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	if dir, _ := clone.Direction(); dir != ActionLeft {
		t.Errorf("Clone direction = %v, expected Left", dir)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}

	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() = %v, expected 1/60", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickSeconds(); got != 1.0/60 {
		t.Errorf("TickSeconds() with zero rate = %v, expected 1/60", got)
	}
}
