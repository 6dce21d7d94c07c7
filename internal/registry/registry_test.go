package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rainmaker/internal/core"
)

type stubGame struct {
	id    string
	steps int
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult {
	g.steps++
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should exist after Register")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" {
			found = true
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, expected Stub stub_a", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include stub_a")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if err == nil || !strings.Contains(err.Error(), "no_such_game") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterMismatchedIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register with a factory building another id should panic")
		}
	}()
	Register("stub_mismatch", func() Game { return &stubGame{id: "stub_other"} })
}
