package registry

import (
	"testing"

	"github.com/vovakirdan/tilemerge/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("Create returned %q, expected stub_b", g.ID())
	}

	if info, ok := Lookup("stub_a"); !ok || info.Title != "Stub stub_a" {
		t.Errorf("Lookup(stub_a) = %+v, %v", info, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup should fail for an unknown id")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for an unknown id")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate id")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
