package tween

import "sort"

// EntityID identifies the animated thing a tween belongs to.
type EntityID uint64

// Channel names which value of an entity a tween drives.
type Channel int

const (
	ChannelPosition Channel = iota
	ChannelScale
	ChannelChase
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelPosition:
		return "position"
	case ChannelScale:
		return "scale"
	case ChannelChase:
		return "chase"
	default:
		return "unknown"
	}
}

// Transform is the drawable state of an entity. Position tweens overwrite
// Position and scale tweens overwrite Scale; Depth is never animated.
type Transform struct {
	Position Vec2
	Depth    float64
	Scale    float64
}

// Completion reports a tween that finished and left the active set.
type Completion struct {
	ID      EntityID
	Channel Channel
}

type request struct {
	id      EntityID
	channel Channel
	move    *Tween[Vec2]
	scalar  *Tween[float64]
}

// Engine owns every active tween and the transforms they write to.
//
// Tweens requested during a tick are queued and join the active set after
// the next Update has advanced the existing tweens, so a tween started in
// response to a move first advances on the following tick.
type Engine struct {
	moves  map[EntityID]*Tween[Vec2]
	scales map[EntityID]*Tween[float64]
	chases map[EntityID]*Tween[float64]

	transforms map[EntityID]Transform
	values     map[EntityID]float64

	pending []request
}

// NewEngine creates an empty tween engine.
func NewEngine() *Engine {
	return &Engine{
		moves:      make(map[EntityID]*Tween[Vec2]),
		scales:     make(map[EntityID]*Tween[float64]),
		chases:     make(map[EntityID]*Tween[float64]),
		transforms: make(map[EntityID]Transform),
		values:     make(map[EntityID]float64),
	}
}

// Place sets an entity's transform directly, at unit scale.
func (e *Engine) Place(id EntityID, pos Vec2, depth float64) {
	e.transforms[id] = Transform{Position: pos, Depth: depth, Scale: 1}
}

// SetValue sets a numeric display value directly.
func (e *Engine) SetValue(id EntityID, v float64) {
	e.values[id] = v
}

// Transform returns the current transform of an entity.
func (e *Engine) Transform(id EntityID) (Transform, bool) {
	tr, ok := e.transforms[id]
	return tr, ok
}

// Value returns the current numeric display value of an entity.
func (e *Engine) Value(id EntityID) (float64, bool) {
	v, ok := e.values[id]
	return v, ok
}

// MoveTo queues a position tween for id, replacing any existing one.
func (e *Engine) MoveTo(id EntityID, tw Tween[Vec2]) {
	e.enqueue(request{id: id, channel: ChannelPosition, move: &tw})
}

// ScaleTo queues a scale tween for id, replacing any existing one.
func (e *Engine) ScaleTo(id EntityID, tw Tween[float64]) {
	e.enqueue(request{id: id, channel: ChannelScale, scalar: &tw})
}

// Chase queues a numeric chase tween for id, replacing any existing one.
func (e *Engine) Chase(id EntityID, tw Tween[float64]) {
	e.enqueue(request{id: id, channel: ChannelChase, scalar: &tw})
}

func (e *Engine) enqueue(r request) {
	for i := range e.pending {
		if e.pending[i].id == r.id && e.pending[i].channel == r.channel {
			e.pending[i] = r
			return
		}
	}
	e.pending = append(e.pending, r)
}

// Active reports whether id has a running tween on the channel.
// Queued requests are not active until the next Update.
func (e *Engine) Active(id EntityID, ch Channel) bool {
	switch ch {
	case ChannelPosition:
		_, ok := e.moves[id]
		return ok
	case ChannelScale:
		_, ok := e.scales[id]
		return ok
	case ChannelChase:
		_, ok := e.chases[id]
		return ok
	default:
		return false
	}
}

// Len returns the number of active tweens.
func (e *Engine) Len() int {
	return len(e.moves) + len(e.scales) + len(e.chases)
}

// Pending returns the number of queued requests.
func (e *Engine) Pending() int {
	return len(e.pending)
}

// Busy reports whether any tween is active or queued.
func (e *Engine) Busy() bool {
	return e.Len() > 0 || len(e.pending) > 0
}

// Update advances every active tween by dt seconds, writes results to the
// transforms and display values, and then activates queued requests.
// Finished tweens are removed and returned sorted by entity and channel.
func (e *Engine) Update(dt float64) []Completion {
	var done []Completion

	for id, tw := range e.moves {
		finished := tw.advance(dt, LerpVec2)
		tr := e.transform(id)
		tr.Position = tw.current
		e.transforms[id] = tr
		if finished {
			delete(e.moves, id)
			done = append(done, Completion{ID: id, Channel: ChannelPosition})
		}
	}

	for id, tw := range e.scales {
		finished := tw.advance(dt, LerpFloat)
		tr := e.transform(id)
		tr.Scale = tw.current
		e.transforms[id] = tr
		if finished {
			delete(e.scales, id)
			done = append(done, Completion{ID: id, Channel: ChannelScale})
		}
	}

	for id, tw := range e.chases {
		finished := tw.advance(dt, LerpFloat)
		e.values[id] = tw.current
		if finished {
			delete(e.chases, id)
			done = append(done, Completion{ID: id, Channel: ChannelChase})
		}
	}

	e.activate()

	sort.Slice(done, func(i, j int) bool {
		if done[i].ID != done[j].ID {
			return done[i].ID < done[j].ID
		}
		return done[i].Channel < done[j].Channel
	})
	return done
}

// activate moves queued requests into the active set.
func (e *Engine) activate() {
	for _, r := range e.pending {
		switch r.channel {
		case ChannelPosition:
			r.move.current = r.move.Start
			e.moves[r.id] = r.move
			tr := e.transform(r.id)
			tr.Position = r.move.Start
			e.transforms[r.id] = tr
		case ChannelScale:
			r.scalar.current = r.scalar.Start
			e.scales[r.id] = r.scalar
			tr := e.transform(r.id)
			tr.Scale = r.scalar.Start
			e.transforms[r.id] = tr
		case ChannelChase:
			r.scalar.current = r.scalar.Start
			e.chases[r.id] = r.scalar
			e.values[r.id] = r.scalar.Start
		}
	}
	e.pending = e.pending[:0]
}

// transform returns the entity's transform, defaulting to unit scale.
func (e *Engine) transform(id EntityID) Transform {
	if tr, ok := e.transforms[id]; ok {
		return tr
	}
	return Transform{Scale: 1}
}

// Cancel removes every active and queued tween of id. The transform keeps
// whatever value was last written; no completion is reported.
func (e *Engine) Cancel(id EntityID) {
	delete(e.moves, id)
	delete(e.scales, id)
	delete(e.chases, id)

	kept := e.pending[:0]
	for _, r := range e.pending {
		if r.id != id {
			kept = append(kept, r)
		}
	}
	e.pending = kept
}

// Forget cancels id's tweens and drops its transform and display value.
func (e *Engine) Forget(id EntityID) {
	e.Cancel(id)
	delete(e.transforms, id)
	delete(e.values, id)
}

// Reset drops all tweens, transforms and values.
func (e *Engine) Reset() {
	clear(e.moves)
	clear(e.scales)
	clear(e.chases)
	clear(e.transforms)
	clear(e.values)
	e.pending = e.pending[:0]
}
