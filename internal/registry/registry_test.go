package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/kabuto/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", "Stub stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", "Stub stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", g.ID())
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("Title = %q", info.Title)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should be false")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", "Dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestRegisterRejectsEmpty(t *testing.T) {
	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"empty id", "", func() Game { return &stubGame{} }},
		{"nil factory", "stub-nil", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			Register(tc.id, "x", tc.f)
		})
	}
	if Exists("stub-nil") {
		t.Error("a rejected registration should not be stored")
	}
}
