package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     uint64
	Board     [][]uint64
	MaxTile   uint64
	Moves     int
	Slide     SlideRule
	State     State
	Animating bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.session.Ticks(),
		Score:     g.session.Score(),
		Board:     g.session.Grid().Scores(),
		MaxTile:   g.session.Grid().MaxScore(),
		Moves:     g.session.Moves(),
		Slide:     g.session.Rules().Slide,
		State:     g.session.State(),
		Animating: g.anim.busy(),
	}
}

// BoardString renders the board as right-aligned columns, "." for empty.
func (s Snapshot) BoardString() string {
	width := len(fmt.Sprint(s.MaxTile))
	var b strings.Builder
	for y, row := range s.Board {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x, score := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			cell := "."
			if score != 0 {
				cell = fmt.Sprint(score)
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
	}
	return b.String()
}

// Equal reports whether two snapshots describe the same game position.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Score != o.Score || s.MaxTile != o.MaxTile ||
		s.Moves != o.Moves || s.Slide != o.Slide || s.State != o.State ||
		len(s.Board) != len(o.Board) {
		return false
	}
	for y := range s.Board {
		if len(s.Board[y]) != len(o.Board[y]) {
			return false
		}
		for x := range s.Board[y] {
			if s.Board[y][x] != o.Board[y][x] {
				return false
			}
		}
	}
	return true
}

// Summary describes the current run for the score table.
func (g *Game) Summary() core.RunSummary {
	return core.RunSummary{
		Score:   g.session.Score(),
		MaxTile: g.session.Grid().MaxScore(),
		Moves:   g.session.Moves(),
		Slide:   string(g.session.Rules().Slide),
	}
}
