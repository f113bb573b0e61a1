package registry

import (
	"testing"

	"github.com/vovakirdan/gatecloud/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }

func (g stubGame) Title() string { return "Stub " + g.id }

func (g stubGame) Reset(core.RuntimeConfig) {}

func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (g stubGame) Render(*core.Screen) {}

func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}
	if got := Title("stub_a"); got != "Stub stub_a" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title of unknown id should echo it, got %q", got)
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("created game ID = %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown id")
	}

	list := List()
	prev := ""
	for _, info := range list {
		if info.ID < prev {
			t.Errorf("List not sorted: %q after %q", info.ID, prev)
		}
		prev = info.ID
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
