package t2048

import (
	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/tween"
)

// Entity IDs outside the tile ID range. Tile IDs are used as entity IDs
// directly and start at 1.
const (
	scoreEntity      tween.EntityID = 1 << 40
	bannerEntity     tween.EntityID = scoreEntity + 1
	backgroundEntity tween.EntityID = 1 << 41 // + cell index
)

// Draw depths.
const (
	depthBackground = -1
	depthDying      = 0
	depthTile       = 1
)

// Bump and pulse scale targets.
const (
	bumpScale  = 0.8
	pulseScale = 0.85
)

// animator turns session results into tween requests and keeps removed
// tiles drawable until their shrink finishes.
type animator struct {
	cfg    config.AnimationConfig
	engine *tween.Engine
	size   int
	dying  map[tween.EntityID]Tile
}

func newAnimator(cfg config.AnimationConfig, size int) *animator {
	return &animator{
		cfg:    cfg,
		engine: tween.NewEngine(),
		size:   size,
		dying:  make(map[tween.EntityID]Tile),
	}
}

// cellPos converts a grid coordinate to tween space (one unit per cell).
func cellPos(c Coord) tween.Vec2 {
	return tween.Vec2{X: float64(c.X), Y: float64(c.Y)}
}

func tileEntity(id TileID) tween.EntityID {
	return tween.EntityID(id)
}

func cellEntity(size int, c Coord) tween.EntityID {
	return backgroundEntity + tween.EntityID(c.X+size*c.Y)
}

// reset drops every tween and places the grid at rest.
func (a *animator) reset(g *Grid, score uint64) {
	a.engine.Reset()
	clear(a.dying)

	for y := range a.size {
		for x := range a.size {
			c := Coord{X: x, Y: y}
			a.engine.Place(cellEntity(a.size, c), cellPos(c), depthBackground)
		}
	}
	for _, pt := range g.Tiles() {
		a.engine.Place(tileEntity(pt.Tile.ID), cellPos(pt.At), depthTile)
	}
	a.engine.SetValue(scoreEntity, float64(score))
}

// apply queues the tweens for one tick's result. They start moving on the
// following update.
func (a *animator) apply(res TickResult, g *Grid) {
	if res.Restarted {
		a.reset(g, res.Score.Old)
	}

	if out := res.Outcome; out != nil && out.Changed() {
		a.applyOutcome(*out)
	}

	if res.ScoreChanged {
		a.engine.Chase(scoreEntity, tween.Tween[float64]{
			Duration: a.cfg.Score.Duration,
			Delay:    a.cfg.Score.Delay,
			Ease:     a.cfg.Score.Ease(),
			Start:    float64(res.Score.Old),
			End:      float64(res.Score.New),
		})
	}

	if res.StateChanged && res.State == StateGameOver {
		a.engine.Place(bannerEntity, tween.Vec2{}, depthTile)
		a.engine.ScaleTo(bannerEntity, tween.Tween[float64]{
			Duration: a.cfg.Pulse.Duration,
			Ease:     a.cfg.Pulse.Ease(),
			Start:    1,
			End:      pulseScale,
			Loops:    tween.LoopForever,
			Bounce:   true,
		})
	}
}

func (a *animator) applyOutcome(out Outcome) {
	for _, m := range out.Merges {
		id := tileEntity(m.Removed.ID)
		a.dying[id] = m.Removed
		a.engine.Cancel(id)
		a.engine.Place(id, cellPos(m.At), depthDying)
		a.engine.ScaleTo(id, tween.Tween[float64]{
			Duration: a.cfg.Death.Duration,
			Ease:     a.cfg.Death.Ease(),
			Start:    1,
			End:      0,
		})
	}

	for _, m := range out.Moves {
		id := tileEntity(m.ID)
		start := cellPos(m.From)
		if tr, ok := a.engine.Transform(id); ok {
			start = tr.Position
		}
		a.engine.MoveTo(id, tween.Tween[tween.Vec2]{
			Duration: a.cfg.Move.Duration,
			Ease:     a.cfg.Move.Ease(),
			Start:    start,
			End:      cellPos(m.To),
		})
	}

	for _, c := range out.Bumps {
		a.engine.ScaleTo(cellEntity(a.size, c), tween.Tween[float64]{
			Duration: a.cfg.Bump.Duration,
			Ease:     a.cfg.Bump.Ease(),
			Start:    1,
			End:      bumpScale,
			Loops:    1,
			Bounce:   true,
		})
	}

	if sp := out.Spawn; sp != nil {
		// Enter from one cell beyond the edge the move pulled away from.
		d := sp.Entry.Delta()
		from := sp.At.Add(Coord{X: -d.X, Y: -d.Y})
		id := tileEntity(sp.Tile.ID)
		a.engine.Place(id, cellPos(from), depthTile)
		a.engine.MoveTo(id, tween.Tween[tween.Vec2]{
			Duration: a.cfg.Spawn.Duration,
			Ease:     a.cfg.Spawn.Ease(),
			Start:    cellPos(from),
			End:      cellPos(sp.At),
		})
	}
}

// update advances every tween by dt and drops tiles whose shrink finished.
func (a *animator) update(dt float64) []tween.Completion {
	done := a.engine.Update(dt)
	for _, c := range done {
		if c.Channel != tween.ChannelScale {
			continue
		}
		if _, ok := a.dying[c.ID]; ok {
			a.engine.Forget(c.ID)
			delete(a.dying, c.ID)
		}
	}
	return done
}

// displayScore returns the chased score shown in the HUD.
func (a *animator) displayScore(fallback uint64) uint64 {
	if v, ok := a.engine.Value(scoreEntity); ok && v >= 0 {
		return uint64(v + 0.5)
	}
	return fallback
}

// busy reports whether anything is still animating, ignoring the endless
// game-over pulse.
func (a *animator) busy() bool {
	n := a.engine.Len()
	if a.engine.Active(bannerEntity, tween.ChannelScale) {
		n--
	}
	return n > 0 || a.engine.Pending() > 0
}
