package slots

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/config"
	"github.com/vovakirdan/tui-slots/internal/core"
)

// Game adapts the Machine to the platform's Reset/Step/Render/State loop.
type Game struct {
	cfg     config.SlotsConfig
	logger  *log.Logger
	machine *Machine
	tick    uint64
	elapsed time.Duration // Machine time per tick

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool
	lastErr  error
}

// New creates a slot machine game. Options are passed to the machine.
// Call Reset before the first Step.
func New(cfg config.SlotsConfig, logger *log.Logger, opts ...Option) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	opts = append([]Option{WithLogger(logger)}, opts...)
	m, err := NewMachine(cfg, rand.New(rand.NewSource(1)), opts...)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		logger:  logger,
		machine: m,
		elapsed: time.Second / time.Duration(core.DefaultConfig().TickRate),
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "slots"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Slot Machine"
}

// Reset reseeds the machine and restores the starting credits.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}

	g.machine.Reseed(rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.elapsed = time.Second / time.Duration(rate)
	g.paused = false
	g.lastErr = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.machine.Phase() != PhaseFalling {
		g.machine.Restart()
		g.lastErr = nil
	}

	if in.Has(core.ActionSpin) {
		if err := g.machine.Spin(); err != nil {
			if !errors.Is(err, ErrSpinInProgress) {
				g.lastErr = err
			}
		} else {
			g.lastErr = nil
		}
	}

	var stepErr error
	if err := g.machine.Tick(g.elapsed); err != nil {
		g.lastErr = err
		stepErr = err
	}

	return core.StepResult{State: g.State(), Err: stepErr}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.machine.Credits(),
		Spinning: g.machine.Phase() == PhaseFalling,
		Paused:   g.paused || g.tooSmall,
	}
}

// Machine exposes the underlying machine.
func (g *Game) Machine() *Machine {
	return g.machine
}
