package t2048

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "2048"

// Package-level settings applied on the next Reset.
var (
	configPath string
	slideRule  SlideRule
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSlideRule overrides the configured slide rule. An empty rule keeps the
// configured one.
func SetSlideRule(rule SlideRule) {
	slideRule = rule
}

// SetLogger sets the logger used by new sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// ParseSlideRule validates a slide rule name.
func ParseSlideRule(name string) (SlideRule, bool) {
	switch SlideRule(name) {
	case SlideStep, SlideCascade:
		return SlideRule(name), true
	default:
		return "", false
	}
}

// Game adapts a Session to the platform: it maps input frames to session
// input, animates results through a tween engine and draws the board.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.TileMergeConfig
	session *Session
	anim    *animator

	paused   bool
	tooSmall bool
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Resizer  = (*Game)(nil)
	_ registry.Animator = (*Game)(nil)
	_ registry.Recorder = (*Game)(nil)
)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTileMerge(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultTileMergeConfig()
	}
	if slideRule != "" {
		cfg.Rules.Slide = string(slideRule)
	}
	g.cfg = cfg

	g.session = NewSession(SessionConfigFrom(cfg, runtime.Seed), WithLogger(logger))
	g.anim = newAnimator(cfg.Animation, g.session.Grid().Size())
	g.anim.reset(g.session.Grid(), 0)

	g.paused = false
	g.checkScreenSize()
}

// SessionConfigFrom converts file configuration into session settings.
func SessionConfigFrom(cfg config.TileMergeConfig, seed int64) SessionConfig {
	sc := SessionConfig{
		Size: cfg.Board.Size,
		Rules: Rules{
			Slide:         SlideRule(cfg.Rules.Slide),
			SpawnFraction: cfg.Rules.SpawnFraction,
		},
		Seed: seed,
	}
	for _, st := range cfg.Board.StartTiles {
		sc.StartTiles = append(sc.StartTiles, StartTile{
			At:    Coord{X: st.X, Y: st.Y},
			Score: st.Score,
		})
	}
	return sc
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	w, h := boardExtent(g.session.Grid().Size())
	g.tooSmall = g.runtime.ScreenW < w+2 || g.runtime.ScreenH < h+hudHeight+2
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}

// Step advances the game by one tick of dt seconds: input, merge, score
// drain and tween advance, in that order.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionPause) && !g.tooSmall {
		g.paused = !g.paused
	}
	if g.tooSmall || g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(g.sessionInput(in))
	g.anim.apply(res, g.session.Grid())
	g.anim.update(dt)

	return core.StepResult{State: g.State(), Restarted: res.Restarted}
}

// sessionInput maps the platform frame to one session input.
func (g *Game) sessionInput(in core.InputFrame) Input {
	if in.Has(core.ActionRestart) {
		return Input{Restart: true}
	}
	a, ok := in.Direction()
	if !ok {
		return Input{}
	}
	switch a {
	case core.ActionUp:
		return MoveInput(DirUp)
	case core.ActionDown:
		return MoveInput(DirDown)
	case core.ActionLeft:
		return MoveInput(DirLeft)
	case core.ActionRight:
		return MoveInput(DirRight)
	}
	return Input{}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.session.Score()),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying session for read access.
func (g *Game) Session() *Session {
	return g.session
}

// Animating reports whether tiles are still in motion.
func (g *Game) Animating() bool {
	return g.anim.busy()
}
