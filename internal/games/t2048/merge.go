package t2048

import (
	"math/rand"
	"slices"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in declaration order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the one-cell displacement for d.
func (d Direction) Delta() Coord {
	switch d {
	case DirUp:
		return Coord{Y: -1}
	case DirDown:
		return Coord{Y: 1}
	case DirLeft:
		return Coord{X: -1}
	case DirRight:
		return Coord{X: 1}
	default:
		return Coord{}
	}
}

// SlideRule selects how far tiles travel on one input.
type SlideRule string

const (
	// SlideStep moves every tile at most one cell per input.
	SlideStep SlideRule = "step"
	// SlideCascade repeats the sweep until nothing moves.
	SlideCascade SlideRule = "cascade"
)

// Rules are the tunable parts of the merge engine.
type Rules struct {
	Slide SlideRule
	// SpawnFraction keeps the lowest 1/SpawnFraction of seen scores as
	// spawn candidates. Values below 1 are treated as 1.
	SpawnFraction int
}

// DefaultRules returns the standard single-step rules.
func DefaultRules() Rules {
	return Rules{Slide: SlideStep, SpawnFraction: 3}
}

// TileMove records one tile's displacement during an input.
type TileMove struct {
	ID   TileID
	From Coord
	To   Coord
}

// TileMerge records two tiles combining. The moving tile survives with the
// summed score; Removed is the tile it landed on.
type TileMerge struct {
	Survivor TileID
	Removed  Tile
	At       Coord
	Score    uint64
}

// SpawnedTile is the tile added after a successful move. Entry is the move
// direction; the tile animates in from the edge the move pulled away from.
type SpawnedTile struct {
	Tile  Tile
	At    Coord
	Entry Direction
}

// Outcome is the full result of applying one input to the grid.
type Outcome struct {
	Direction   Direction
	Moves       []TileMove
	Merges      []TileMerge
	Bumps       []Coord
	Seen        []uint64
	ScoreEvents []ScoreEvent
	Spawn       *SpawnedTile
	GameOver    bool
}

// Changed reports whether any tile moved or merged.
func (o Outcome) Changed() bool {
	return len(o.Moves) > 0
}

// ScoreDelta returns the total of the queued score additions.
func (o Outcome) ScoreDelta() uint64 {
	var sum uint64
	for _, ev := range o.ScoreEvents {
		if ev.Kind == ScoreAdd {
			sum += ev.Delta
		}
	}
	return sum
}

// sweepState tracks one input across repeated sweeps.
type sweepState struct {
	out     *Outcome
	locked  map[TileID]bool
	seen    map[uint64]struct{}
	moveIdx map[TileID]int
}

// Apply moves every tile one step in dir (or until settled under
// SlideCascade), merges equal neighbours, spawns a tile on the opened edge
// and checks for the end of the game. An input that moves nothing leaves
// the grid untouched and returns an unchanged Outcome.
func Apply(g *Grid, dir Direction, rng *rand.Rand, rules Rules) Outcome {
	out := Outcome{Direction: dir}
	st := &sweepState{
		out:     &out,
		locked:  make(map[TileID]bool),
		seen:    make(map[uint64]struct{}),
		moveIdx: make(map[TileID]int),
	}

	for {
		if !st.sweep(g, dir) || rules.Slide != SlideCascade {
			break
		}
	}

	if !out.Changed() {
		return out
	}

	for _, m := range out.Moves {
		if !slices.Contains(out.Bumps, m.To) {
			out.Bumps = append(out.Bumps, m.To)
		}
	}

	for score := range st.seen {
		out.Seen = append(out.Seen, score)
	}
	slices.Sort(out.Seen)

	if at, ok := pickSpawnCell(g, dir, rng); ok {
		t := g.Spawn(at, SpawnScore(out.Seen, rng, rules.SpawnFraction))
		out.Spawn = &SpawnedTile{Tile: *t, At: at, Entry: dir}
	}

	out.GameOver = IsTerminal(g)
	return out
}

// sweep performs one wall-first pass and reports whether anything moved.
func (st *sweepState) sweep(g *Grid, dir Direction) bool {
	stepped := false
	delta := dir.Delta()

	for _, c := range SweepOrder(g.Size(), dir) {
		t, ok := g.Get(c)
		if !ok {
			continue
		}
		st.seen[t.Score] = struct{}{}

		dest := c.Add(delta)
		if !g.InBounds(dest) {
			continue
		}

		if occupant, filled := g.Get(dest); filled {
			if occupant.Score != t.Score || st.locked[t.ID] || st.locked[occupant.ID] {
				continue
			}
			g.Take(c)
			g.Take(dest)
			t.Score += occupant.Score
			g.Move(t, dest)
			st.locked[t.ID] = true

			st.out.Merges = append(st.out.Merges, TileMerge{
				Survivor: t.ID,
				Removed:  *occupant,
				At:       dest,
				Score:    t.Score,
			})
			st.out.ScoreEvents = append(st.out.ScoreEvents, ScoreEvent{Kind: ScoreAdd, Delta: t.Score})
		} else {
			g.Take(c)
			g.Move(t, dest)
		}

		st.record(t.ID, c, dest)
		stepped = true
	}

	return stepped
}

// record notes a step, folding repeated steps of one tile into one move.
func (st *sweepState) record(id TileID, from, to Coord) {
	if i, ok := st.moveIdx[id]; ok {
		st.out.Moves[i].To = to
		return
	}
	st.moveIdx[id] = len(st.out.Moves)
	st.out.Moves = append(st.out.Moves, TileMove{ID: id, From: from, To: to})
}

// SweepOrder lists every cell so that cells nearest the target wall come
// first. A tile therefore never steps past one that has not moved yet.
func SweepOrder(n int, dir Direction) []Coord {
	order := make([]Coord, 0, n*n)
	along := func(i int) int {
		if dir == DirDown || dir == DirRight {
			return n - 1 - i
		}
		return i
	}

	for outer := range n {
		for inner := range n {
			switch dir {
			case DirUp, DirDown:
				order = append(order, Coord{X: outer, Y: along(inner)})
			default:
				order = append(order, Coord{X: along(inner), Y: outer})
			}
		}
	}
	return order
}

// SpawnEdge returns the cells on the edge opposite the wall dir moves toward.
func SpawnEdge(n int, dir Direction) []Coord {
	cells := make([]Coord, 0, n)
	for i := range n {
		switch dir {
		case DirUp:
			cells = append(cells, Coord{X: i, Y: n - 1})
		case DirDown:
			cells = append(cells, Coord{X: i, Y: 0})
		case DirLeft:
			cells = append(cells, Coord{X: n - 1, Y: i})
		case DirRight:
			cells = append(cells, Coord{X: 0, Y: i})
		}
	}
	return cells
}

// pickSpawnCell shuffles the spawn edge and returns its first empty cell.
func pickSpawnCell(g *Grid, dir Direction, rng *rand.Rand) (Coord, bool) {
	cells := SpawnEdge(g.Size(), dir)
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	for _, c := range cells {
		if !g.IsFilled(c) {
			return c, true
		}
	}
	return Coord{}, false
}

// SpawnCandidates returns the lowest 1/fraction of the sorted distinct
// scores, keeping at least one.
func SpawnCandidates(seen []uint64, fraction int) []uint64 {
	if len(seen) == 0 {
		return nil
	}
	if fraction < 1 {
		fraction = 1
	}
	keep := max(len(seen)/fraction, 1)
	return seen[:keep]
}

// SpawnScore picks a new tile's score uniformly from SpawnCandidates.
// With nothing seen it falls back to 2.
func SpawnScore(seen []uint64, rng *rand.Rand, fraction int) uint64 {
	candidates := SpawnCandidates(seen, fraction)
	if len(candidates) == 0 {
		return 2
	}
	return candidates[rng.Intn(len(candidates))]
}

// IsTerminal reports whether the grid is full and no two neighbours share
// a score.
func IsTerminal(g *Grid) bool {
	for y := range g.Size() {
		for x := range g.Size() {
			c := Coord{X: x, Y: y}
			t, ok := g.Get(c)
			if !ok {
				return false
			}
			for _, n := range g.Neighbors(c) {
				if n != nil && n.Score == t.Score {
					return false
				}
			}
		}
	}
	return true
}
