package slots

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-slots/internal/config"
)

// frameRate is the frame unit of all per-frame rates.
const frameRate = 60

// VoidLabel names a spin that could not be scored.
const VoidLabel = "Void"

// ErrSpinInProgress is returned by Spin while cells are still falling.
var ErrSpinInProgress = errors.New("spin already in progress")

// Presenter receives state changes from the machine.
// Each method is called after the corresponding state has changed.
type Presenter interface {
	RenderCell(c Cell)
	RenderScore(total int)
	RenderOutcome(o SpinOutcome)
}

// NopPresenter ignores all notifications.
type NopPresenter struct{}

func (NopPresenter) RenderCell(Cell)           {}
func (NopPresenter) RenderScore(int)           {}
func (NopPresenter) RenderOutcome(SpinOutcome) {}

// Phase is the machine's position in the spin cycle.
type Phase int

const (
	PhaseIdle    Phase = iota // No spin yet
	PhaseFalling              // Cells are dropping
	PhaseSettled              // Outcome resolved and applied
	PhaseVoid                 // Resolution failed; credits untouched
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseSettled:
		return "settled"
	case PhaseVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithPresenter sets the presentation adapter.
func WithPresenter(p Presenter) Option {
	return func(m *Machine) { m.presenter = p }
}

// WithLogger sets the logger for spin events.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithCatalog replaces the standard symbol catalog.
func WithCatalog(c *Catalog) Option {
	return func(m *Machine) { m.catalog = c }
}

// Machine runs the spin cycle: repopulate the grid, animate the fall,
// resolve matches, apply the score, and reveal matched cells after a delay.
// It is single-threaded; all calls must come from one goroutine.
type Machine struct {
	cfg       config.SlotsConfig
	rng       *rand.Rand
	catalog   *Catalog
	grid      *Grid
	scheduler *FallScheduler
	score     *ScoreTracker
	label     Fade
	reveal    Deferred
	presenter Presenter
	logger    *log.Logger

	phase   Phase
	outcome SpinOutcome
	spins   int
}

// NewMachine creates an idle machine. The config must validate.
func NewMachine(cfg config.SlotsConfig, rng *rand.Rand, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(Layout{
		Rows:       cfg.Grid.Rows,
		Columns:    cfg.Grid.Columns,
		SymbolSize: cfg.Grid.SymbolSize,
		TopPadding: cfg.Grid.TopPadding,
		RowDelay:   cfg.Animation.RowDelay,
	})

	m := &Machine{
		cfg:       cfg,
		rng:       rng,
		catalog:   NewCatalog(),
		grid:      grid,
		scheduler: NewFallScheduler(grid, cfg.Animation.FallSpeed),
		score: NewScoreTracker(cfg.Gameplay.StartingCredits,
			NewPulse(cfg.Animation.PulseRate, cfg.Animation.PulsePeak)),
		label:     NewFade(cfg.Animation.FadeRate),
		presenter: NopPresenter{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	return m, nil
}

// Spin starts a new spin. It fails with ErrSpinInProgress while the previous
// spin is still falling. A pending reveal from the previous spin is cancelled.
func (m *Machine) Spin() error {
	if m.phase == PhaseFalling {
		return ErrSpinInProgress
	}

	if m.reveal.Cancel() {
		m.logger.Debug("cancelled pending reveal", "spin", m.spins)
	}

	m.grid.Reset(m.rng, m.catalog)
	m.scheduler.Arm()
	m.label.Out()
	m.outcome = SpinOutcome{}
	m.phase = PhaseFalling
	m.spins++

	m.logger.Debug("spin started", "spin", m.spins, "symbols", m.grid.SymbolIDs())
	for _, c := range m.grid.cells {
		m.presenter.RenderCell(c)
	}
	return nil
}

// Tick advances the machine by elapsed time. It returns an error only when
// the spin that settled during this tick could not be scored.
func (m *Machine) Tick(elapsed time.Duration) error {
	if elapsed <= 0 {
		return nil
	}
	frames := elapsed.Seconds() * frameRate

	m.score.Tick(frames)
	m.label.Step(frames)
	m.reveal.Advance(elapsed)

	if m.phase != PhaseFalling {
		return nil
	}

	settled := m.scheduler.Tick(frames)
	for _, c := range m.grid.cells {
		if c.State != Pending {
			m.presenter.RenderCell(c)
		}
	}
	if !settled {
		return nil
	}
	return m.resolve()
}

// resolve scores the settled grid. The full outcome is computed before the
// score is touched, so a failed resolution leaves credits unchanged.
func (m *Machine) resolve() error {
	out, err := Resolve(m.grid.SymbolIDs())
	if err != nil {
		m.phase = PhaseVoid
		m.outcome = SpinOutcome{Label: VoidLabel}
		m.label.In()
		m.presenter.RenderOutcome(m.outcome)
		m.logger.Error("spin voided", "spin", m.spins, "error", err)
		return fmt.Errorf("spin %d: %w", m.spins, err)
	}

	m.phase = PhaseSettled
	m.outcome = out
	m.label.In()
	total := m.score.ApplyDelta(out.Delta)

	m.logger.Info("spin resolved",
		"spin", m.spins,
		"outcome", out.Summary(),
		"delta", out.Delta,
		"credits", total,
	)
	m.presenter.RenderOutcome(out)
	m.presenter.RenderScore(total)

	if out.Won() {
		delay := time.Duration(m.cfg.Animation.RevealDelayMS) * time.Millisecond
		m.reveal.Schedule(delay, func() { m.revealMatches(out) })
	}
	return nil
}

// revealMatches switches every cell of a winning symbol to its connected look.
func (m *Machine) revealMatches(out SpinOutcome) {
	for _, c := range m.grid.Cells() {
		if !out.Matched(c.Symbol) {
			continue
		}
		updated, err := m.grid.UpdateCell(c.Row, c.Column, c.Symbol, VariantConnected)
		if err != nil {
			m.logger.Error("reveal failed", "row", c.Row, "column", c.Column, "error", err)
			continue
		}
		m.presenter.RenderCell(updated)
	}
	m.logger.Debug("revealed matches", "spin", m.spins)
}

// Restart returns credits to the configured start and empties the grid.
func (m *Machine) Restart() {
	m.reveal.Cancel()
	m.scheduler.Disarm()
	m.grid = NewGrid(m.grid.Layout())
	m.scheduler = NewFallScheduler(m.grid, m.cfg.Animation.FallSpeed)
	m.score.Set(m.cfg.Gameplay.StartingCredits)
	m.label = NewFade(m.cfg.Animation.FadeRate)
	m.outcome = SpinOutcome{}
	m.phase = PhaseIdle
	m.spins = 0

	for _, c := range m.grid.cells {
		m.presenter.RenderCell(c)
	}
	m.presenter.RenderOutcome(m.outcome)
	m.presenter.RenderScore(m.score.Current())
	m.logger.Info("credits reset", "credits", m.score.Current())
}

// Reseed swaps the random source and restarts the machine.
func (m *Machine) Reseed(rng *rand.Rand) {
	m.rng = rng
	m.Restart()
}

// Phase returns the current spin phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Cells returns a copy of the grid cells in row-major order.
func (m *Machine) Cells() []Cell {
	return m.grid.Cells()
}

// Layout returns the grid geometry.
func (m *Machine) Layout() Layout {
	return m.grid.Layout()
}

// Catalog returns the symbol catalog.
func (m *Machine) Catalog() *Catalog {
	return m.catalog
}

// Credits returns the current credit total.
func (m *Machine) Credits() int {
	return m.score.Current()
}

// CreditsScale returns the emphasis scale of the credit display.
func (m *Machine) CreditsScale() float64 {
	return m.score.Scale()
}

// Outcome returns the last outcome and whether one is available.
func (m *Machine) Outcome() (SpinOutcome, bool) {
	return m.outcome, m.phase == PhaseSettled || m.phase == PhaseVoid
}

// OutcomeAlpha returns the opacity of the outcome label.
func (m *Machine) OutcomeAlpha() float64 {
	return m.label.Alpha()
}

// RevealPending reports whether matched cells are waiting to be revealed.
func (m *Machine) RevealPending() bool {
	return m.reveal.Pending()
}

// Spins returns the number of spins started since the last restart.
func (m *Machine) Spins() int {
	return m.spins
}
