package t2048

import "testing"

func TestScoreDrain(t *testing.T) {
	var s ScoreState
	s.Push(ScoreEvent{Kind: ScoreAdd, Delta: 4})
	s.Push(ScoreEvent{Kind: ScoreAdd, Delta: 8})

	if s.Total() != 0 {
		t.Errorf("Total before drain = %d, want 0", s.Total())
	}
	if s.Queued() != 2 {
		t.Errorf("Queued = %d, want 2", s.Queued())
	}

	change, ok := s.Drain()
	if !ok || change != (ScoreChange{Old: 0, New: 12}) {
		t.Errorf("Drain = %+v, %v; want {0 12}, true", change, ok)
	}
	if prev, changed := s.Previous(); prev != 0 || !changed {
		t.Errorf("Previous = %d, %v; want 0, true", prev, changed)
	}

	// The previous total is only held for the tick that changed it.
	if _, ok := s.Drain(); ok {
		t.Error("empty drain reported a change")
	}
	if prev, changed := s.Previous(); prev != 12 || changed {
		t.Errorf("Previous after empty drain = %d, %v; want 12, false", prev, changed)
	}
}

func TestScoreResetOrdering(t *testing.T) {
	tests := []struct {
		name   string
		events []ScoreEvent
		want   uint64
	}{
		{"add then reset", []ScoreEvent{{Kind: ScoreAdd, Delta: 4}, {Kind: ScoreReset}}, 0},
		{"reset then add", []ScoreEvent{{Kind: ScoreReset}, {Kind: ScoreAdd, Delta: 2}}, 2},
		{"reset only", []ScoreEvent{{Kind: ScoreReset}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s ScoreState
			s.Push(ScoreEvent{Kind: ScoreAdd, Delta: 16})
			s.Drain()

			for _, ev := range tt.events {
				s.Push(ev)
			}
			s.Drain()

			if s.Total() != tt.want {
				t.Errorf("Total = %d, want %d", s.Total(), tt.want)
			}
			if s.Queued() != 0 {
				t.Errorf("Queued after drain = %d, want 0", s.Queued())
			}
		})
	}
}
