package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/games/slots"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game, err := slots.New(config.DefaultSlotsConfig(), nil)
	if err != nil {
		t.Fatalf("slots.New() error = %v", err)
	}
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model
}

func TestModelSpinOnTick(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.gameState.Spinning {
		t.Fatal("Spinning before tick, expected input to wait for the next tick")
	}

	m = update(t, m, TickMsg{})
	if !m.gameState.Spinning {
		t.Error("Spinning = false after spin tick, expected true")
	}
	if m.inputFrame.Has(core.ActionSpin) {
		t.Error("input frame not cleared after tick")
	}
}

func TestModelHelpToggleShrinksScreen(t *testing.T) {
	m := newTestModel(t)
	short := m.screen.Height()
	if short != 23 {
		t.Errorf("screen height = %d, expected 23", short)
	}

	m = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Fatal("ShowAll = false after ?, expected true")
	}
	if m.screen.Height() >= short {
		t.Errorf("screen height = %d with full help, expected less than %d", m.screen.Height(), short)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if m.game.Machine().Spins() != 1 {
		t.Errorf("Spins() = %d after resize, expected 1", m.game.Machine().Spins())
	}
}

func TestModelViewAndQuit(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score:") {
		t.Error("View() missing score HUD")
	}
	if !strings.Contains(view, "spin") {
		t.Error("View() missing help footer")
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Error("quit key returned nil command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelFullHelpListsScreenshot(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runeKey("?"))

	if !strings.Contains(m.View(), "screenshot") {
		t.Error("full help view missing screenshot binding")
	}
}

func TestModelVoidSpinLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	// A single-symbol catalog fills all 15 cells alike, past the point table.
	single, err := slots.NewCatalogFrom(slots.Symbol{ID: "Q", Asset: "assets/Q.png"})
	if err != nil {
		t.Fatalf("NewCatalogFrom() error = %v", err)
	}
	game, err := slots.New(config.DefaultSlotsConfig(), logger, slots.WithCatalog(single))
	if err != nil {
		t.Fatalf("slots.New() error = %v", err)
	}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}, logger)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = update(t, m, TickMsg{})
	for i := 0; i < 1000 && m.gameState.Spinning; i++ {
		m = update(t, m, TickMsg{})
	}
	if m.game.Machine().Phase() != slots.PhaseVoid {
		t.Fatalf("Phase() = %v, expected void", m.game.Machine().Phase())
	}

	out := buf.String()
	if n := strings.Count(out, "spin voided"); n != 1 {
		t.Errorf("\"spin voided\" logged %d times, expected 1:\n%s", n, out)
	}
	if n := strings.Count(out, "no entry in the point table"); n != 1 {
		t.Errorf("unscored error logged %d times, expected 1", n)
	}
}
