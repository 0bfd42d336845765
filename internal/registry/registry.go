// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilemerge/internal/core"
)

// Game is the interface every playable board variant implements.
// Games contain pure logic with no dependency on Bubble Tea.
// The platform handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "2048").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of dt seconds.
	// Input is abstracted to platform-level actions (Up, Restart, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The game clears the screen itself.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// Animator is implemented by games that animate between ticks, so the
// platform can tell a settled board from one still in motion.
type Animator interface {
	Animating() bool
}

// Recorder is implemented by games that can describe a finished run.
type Recorder interface {
	Summary() core.RunSummary
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Titles are static, so one throwaway instance is enough.
	titles[id] = f().Title()
}

// Lookup returns the metadata of a registered game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	title, ok := titles[id]
	if !ok {
		return GameInfo{}, false
	}
	return GameInfo{ID: id, Title: title}, true
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
