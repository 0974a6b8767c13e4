package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// stubGame records what the platform hands it.
type stubGame struct {
	resets  int
	frames  [][]core.Action
	resized [2]int
}

func (g *stubGame) ID() string                   { return "stub" }
func (g *stubGame) Title() string                { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)      { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState        { return core.GameState{Level: 1} }
func (g *stubGame) Resize(w, h int)              { g.resized = [2]int{w, h} }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions())
	return core.StepResult{State: g.State()}
}

func newTestModel(g *stubGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return mm, cmd
}

func TestModelDeliversKeysOnNextTick(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.frames) != 1 {
		t.Fatalf("Expected 1 frame, got %d", len(g.frames))
	}
	want := []core.Action{core.ActionLeft, core.ActionLeft, core.ActionToggleAI}
	got := g.frames[0]
	if len(got) != len(want) {
		t.Fatalf("frame actions = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, expected %v", i, got[i], want[i])
		}
	}

	_, _ = update(t, m, TickMsg(time.Now()))
	if len(g.frames[1]) != 0 {
		t.Errorf("input was not cleared between frames: %v", g.frames[1])
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&stubGame{})

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelReservesHelpRows(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)

	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d, expected 23", m.screen.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() != 24-fullHelpHeight {
		t.Errorf("screen height with full help = %d, expected %d", m.screen.Height(), 24-fullHelpHeight)
	}
	if g.resized != [2]int{80, 24 - fullHelpHeight} {
		t.Errorf("game resized to %v", g.resized)
	}
}

func TestModelResizeKeepsResizableGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(g)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected only the initial one", g.resets)
	}
	if g.resized != [2]int{100, 39} {
		t.Errorf("game resized to %v, expected [100 39]", g.resized)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View should contain the game's render")
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m.items = []registry.GameInfo{{ID: "tetris", Title: "Tetris"}, {ID: "tetris_ai", Title: "Tetris (Automated)"}}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}

	res := next.(MenuModel).Result()
	if res.GameID != "tetris_ai" || res.Quit || res.WantsRuns {
		t.Errorf("Result() = %+v, expected tetris_ai", res)
	}
}

func TestMenuRunsAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsRuns {
		t.Error("tab should open the runs view")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}
}

type fakeRuns struct {
	runs []storage.Run
	err  error
}

func (f fakeRuns) RecentRuns(string, int) ([]storage.Run, error) { return f.runs, f.err }

func (f fakeRuns) Summarize(string) (storage.Summary, error) {
	s := storage.Summary{Runs: len(f.runs)}
	for _, r := range f.runs {
		s.BestScore = max(s.BestScore, r.Score)
	}
	return s, f.err
}

func TestRunsView(t *testing.T) {
	src := fakeRuns{runs: []storage.Run{
		{Seed: 1, Score: 300, Lines: 3, Pieces: 40, Level: 1, GameOver: true, CreatedAt: time.Now()},
		{Seed: 2, Score: 100, Lines: 1, Pieces: 20, Level: 1, CreatedAt: time.Now()},
	}}

	m := NewRunsModel(src, "tetris_ai", 100, 30)
	view := m.View()

	if !strings.Contains(view, "RECORDED RUNS - tetris_ai") {
		t.Error("View should show the title")
	}
	if !strings.Contains(view, "2 runs  best 300") {
		t.Errorf("View should show the summary, got:\n%s", view)
	}
}

func TestRunsViewEmptyAndError(t *testing.T) {
	if view := NewRunsModel(nil, "tetris_ai", 80, 24).View(); !strings.Contains(view, "No runs recorded yet.") {
		t.Error("nil source should show the empty message")
	}

	broken := fakeRuns{err: errors.New("disk on fire")}
	if view := NewRunsModel(broken, "tetris_ai", 80, 24).View(); !strings.Contains(view, "disk on fire") {
		t.Error("load error should be shown")
	}
}

func TestRunsViewBack(t *testing.T) {
	m := NewRunsModel(nil, "tetris_ai", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(RunsModel).IsGoingBack() {
		t.Error("esc should go back to the menu")
	}
}
