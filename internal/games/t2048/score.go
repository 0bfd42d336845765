package t2048

// ScoreEventKind distinguishes score events.
type ScoreEventKind int

const (
	ScoreAdd ScoreEventKind = iota
	ScoreReset
)

// ScoreEvent is a queued change to the running score.
type ScoreEvent struct {
	Kind  ScoreEventKind
	Delta uint64
}

// ScoreChange describes the transition applied by one drain.
type ScoreChange struct {
	Old uint64
	New uint64
}

// ScoreState holds the running total. It only changes by draining queued
// events; the total before the last drain stays readable until the next one.
type ScoreState struct {
	total    uint64
	previous uint64
	changed  bool
	queue    []ScoreEvent
}

// Total returns the current score.
func (s *ScoreState) Total() uint64 {
	return s.total
}

// Previous returns the total before the most recent drain and whether that
// drain changed it.
func (s *ScoreState) Previous() (uint64, bool) {
	return s.previous, s.changed
}

// Push queues an event for the next drain.
func (s *ScoreState) Push(ev ScoreEvent) {
	s.queue = append(s.queue, ev)
}

// Queued returns the number of undrained events.
func (s *ScoreState) Queued() int {
	return len(s.queue)
}

// Drain applies every queued event in order. It returns the transition
// when the total changed.
func (s *ScoreState) Drain() (ScoreChange, bool) {
	s.previous = s.total
	events := s.queue
	s.queue = nil

	for _, ev := range events {
		switch ev.Kind {
		case ScoreAdd:
			s.total += ev.Delta
		case ScoreReset:
			s.total = 0
		}
	}

	s.changed = s.total != s.previous
	if !s.changed {
		return ScoreChange{}, false
	}
	return ScoreChange{Old: s.previous, New: s.total}, true
}
