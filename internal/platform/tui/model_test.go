package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

// stubGame ends after a fixed number of steps and restarts on request.
type stubGame struct {
	steps    int
	overAt   int
	dts      []float64
	resizedW int
	resizedH int
	moving   bool
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }
func (g *stubGame) Resize(width, height int) { g.resizedW, g.resizedH = width, height }
func (g *stubGame) Animating() bool { return g.moving }
func (g *stubGame) Summary() core.RunSummary {
	return core.RunSummary{Score: 64, MaxTile: 32, Moves: g.steps, Slide: "cascade"}
}

func (g *stubGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.dts = append(g.dts, dt)
	if in.Has(core.ActionRestart) {
		g.steps = 0
		return core.StepResult{State: g.State(), Restarted: true}
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: 64, GameOver: g.steps >= g.overAt}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

func TestModelRecordsRunOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 2}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 4 {
		m = tick(t, m, now.Add(time.Duration(i)*50*time.Millisecond))
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 64 || runs[0].MaxTile != 32 || runs[0].Slide != "cascade" {
		t.Errorf("run = %+v", runs[0])
	}

	// Restarting allows the next game over to be recorded.
	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	m = tick(t, m, now.Add(time.Second))
	m = tick(t, m, now.Add(2*time.Second))
	m = tick(t, m, now.Add(3*time.Second))

	runs, _ = store.TopRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs after restart, want 2", len(runs))
	}
}

func TestModelWaitsForAnimationBeforeRecording(t *testing.T) {
	store := openStore(t)
	game := &stubGame{overAt: 1, moving: true}
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m = tick(t, m, now)
	if runs, _ := store.TopRuns("stub", 10); len(runs) != 0 {
		t.Fatalf("run saved while still animating: %+v", runs)
	}

	game.moving = false
	tick(t, m, now.Add(time.Second))
	if runs, _ := store.TopRuns("stub", 10); len(runs) != 1 {
		t.Errorf("saved %d runs after settling, want 1", len(runs))
	}
}

func TestModelMeasuresFrameTime(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 50, Seed: 1})

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m = tick(t, m, now)
	tick(t, m, now.Add(30*time.Millisecond))

	if len(game.dts) != 2 {
		t.Fatalf("steps = %d, want 2", len(game.dts))
	}
	if game.dts[0] != 0.02 {
		t.Errorf("first dt = %v, want nominal 0.02", game.dts[0])
	}
	if game.dts[1] != 0.03 {
		t.Errorf("second dt = %v, want 0.03", game.dts[1])
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
	m = tick(t, m, time.Now())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if game.steps != 1 {
		t.Errorf("resize reset the game: steps = %d", game.steps)
	}
	if game.resizedW != 100 || game.resizedH >= 30 || game.resizedH < 28 {
		t.Errorf("resized to %dx%d, want 100 wide with room for help", game.resizedW, game.resizedH)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{overAt: 100}, nil, core.DefaultConfig())

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
}
