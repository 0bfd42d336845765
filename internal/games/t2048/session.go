package t2048

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// State is the run state of a session.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StartTile is a tile placed on every (re)start.
type StartTile struct {
	At    Coord
	Score uint64
}

// SessionConfig configures a Session.
type SessionConfig struct {
	Size       int
	Rules      Rules
	StartTiles []StartTile
	Seed       int64
}

// DefaultSessionConfig returns a 4×4 session with two 2-tiles.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Size:  DefaultBoardSize,
		Rules: DefaultRules(),
		StartTiles: []StartTile{
			{At: Coord{X: 1, Y: 1}, Score: 2},
			{At: Coord{X: 2, Y: 2}, Score: 2},
		},
	}
}

// Input is the discrete input for one tick. At most one direction is
// accepted per tick.
type Input struct {
	Move    Direction
	HasMove bool
	Restart bool
}

// MoveInput returns an input carrying a direction.
func MoveInput(d Direction) Input {
	return Input{Move: d, HasMove: true}
}

// TickResult reports what one tick did.
type TickResult struct {
	// Outcome is set when a direction was accepted, even if nothing moved.
	Outcome      *Outcome
	Restarted    bool
	Score        ScoreChange
	ScoreChanged bool
	State        State
	StateChanged bool
}

// Session owns the grid, score and run state of one game.
type Session struct {
	cfg    SessionConfig
	grid   *Grid
	rng    *rand.Rand
	score  ScoreState
	state  State
	tick   uint64
	moves  int
	logger *log.Logger
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession creates a running session seeded with the start tiles.
func NewSession(cfg SessionConfig, opts ...SessionOption) *Session {
	if cfg.Size <= 0 {
		cfg.Size = DefaultBoardSize
	}
	if cfg.Rules.Slide == "" {
		cfg.Rules.Slide = SlideStep
	}
	if cfg.Rules.SpawnFraction <= 0 {
		cfg.Rules.SpawnFraction = DefaultRules().SpawnFraction
	}

	s := &Session{
		cfg:    cfg,
		grid:   NewGrid(cfg.Size),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.seed()
	return s
}

// seed places the configured start tiles on an empty grid.
func (s *Session) seed() {
	for _, st := range s.cfg.StartTiles {
		s.grid.Spawn(st.At, st.Score)
	}
}

// Grid returns the grid for read access.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Score returns the running total.
func (s *Session) Score() uint64 {
	return s.score.Total()
}

// PreviousScore returns the total before the last drain and whether the
// last drain changed it.
func (s *Session) PreviousScore() (uint64, bool) {
	return s.score.Previous()
}

// State returns the run state.
func (s *Session) State() State {
	return s.state
}

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Moves returns the number of inputs that changed the grid since the last
// restart.
func (s *Session) Moves() int {
	return s.moves
}

// Rules returns the merge rules in effect.
func (s *Session) Rules() Rules {
	return s.cfg.Rules
}

// Tick processes one frame: restart or direction input, the merge
// transition, and the score drain, in that order.
func (s *Session) Tick(in Input) TickResult {
	s.tick++
	before := s.state
	var res TickResult

	switch {
	case in.Restart:
		s.restart()
		res.Restarted = true
	case in.HasMove && s.state == StateRunning:
		out := s.move(in.Move)
		res.Outcome = &out
	}

	res.Score, res.ScoreChanged = s.score.Drain()
	res.State = s.state
	res.StateChanged = s.state != before
	return res
}

// restart clears the board and score and seeds the start tiles.
func (s *Session) restart() {
	s.logger.Info("restart", "score", s.score.Total(), "moves", s.moves)
	s.grid.Clear()
	s.score.Push(ScoreEvent{Kind: ScoreReset})
	s.state = StateRunning
	s.moves = 0
	s.seed()
}

// move applies one direction and queues its score events.
func (s *Session) move(dir Direction) Outcome {
	out := Apply(s.grid, dir, s.rng, s.cfg.Rules)
	if !out.Changed() {
		s.logger.Debug("no-op move", "dir", dir)
		return out
	}

	s.moves++
	for _, ev := range out.ScoreEvents {
		s.score.Push(ev)
	}

	s.logger.Debug("move",
		"dir", dir,
		"moved", len(out.Moves),
		"merges", len(out.Merges),
		"delta", out.ScoreDelta(),
	)
	if out.Spawn != nil {
		s.logger.Debug("spawn", "x", out.Spawn.At.X, "y", out.Spawn.At.Y, "score", out.Spawn.Tile.Score)
	}

	if out.GameOver {
		s.state = StateGameOver
		s.logger.Info("game over",
			"score", s.score.Total()+out.ScoreDelta(),
			"max", s.grid.MaxScore(),
			"moves", s.moves,
		)
	}
	return out
}
