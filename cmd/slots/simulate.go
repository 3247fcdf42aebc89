package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/games/slots"
)

var flagSpins int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run spins without the terminal UI",
	Long: `Run a number of spins headless, driving the machine with fixed
frame ticks, and print every outcome plus a summary.

Logs go to stderr, the table goes to stdout.

Examples:
  slots simulate
  slots simulate --spins 200 --seed 42
  slots simulate --verbose`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSpins, "spins", 20, "Number of spins to run")
}

// spinRecord is one row of the simulation table.
type spinRecord struct {
	Spin    int
	Symbols []slots.SymbolID
	Outcome slots.SpinOutcome
	Credits int
	Void    bool
	Frames  int
}

// simulationSummary aggregates a simulation run.
type simulationSummary struct {
	Spins   int
	Wins    int
	Losses  int
	Voids   int
	Net     int
	Credits int
}

// maxSpinFrames bounds one spin so a broken config cannot loop forever.
const maxSpinFrames = 100_000

// logPresenter reports machine output through the logger.
type logPresenter struct {
	logger *log.Logger
}

func (p logPresenter) RenderCell(slots.Cell) {}

func (p logPresenter) RenderScore(total int) {
	p.logger.Debug("score", "credits", total)
}

func (p logPresenter) RenderOutcome(out slots.SpinOutcome) {
	p.logger.Debug("outcome", "label", out.Label, "delta", out.Delta)
}

// simulate spins the machine n times, ticking by frame until each spin settles.
func simulate(m *slots.Machine, n int, frame time.Duration) ([]spinRecord, simulationSummary, error) {
	records := make([]spinRecord, 0, n)
	sum := simulationSummary{}
	start := m.Credits()

	for range n {
		if err := m.Spin(); err != nil {
			return records, sum, err
		}

		rec := spinRecord{Spin: m.Spins()}
		for m.Phase() == slots.PhaseFalling {
			if rec.Frames >= maxSpinFrames {
				return records, sum, fmt.Errorf("spin %d did not settle after %d frames", rec.Spin, rec.Frames)
			}
			rec.Frames++
			if err := m.Tick(frame); err != nil {
				if !errors.Is(err, slots.ErrUnscoredCount) {
					return records, sum, err
				}
				rec.Void = true
			}
		}

		for _, c := range m.Cells() {
			rec.Symbols = append(rec.Symbols, c.Symbol)
		}
		rec.Outcome, _ = m.Outcome()
		rec.Credits = m.Credits()
		records = append(records, rec)

		sum.Spins++
		switch {
		case rec.Void:
			sum.Voids++
		case rec.Outcome.Won():
			sum.Wins++
		default:
			sum.Losses++
		}
	}

	sum.Credits = m.Credits()
	sum.Net = sum.Credits - start
	return records, sum, nil
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSpins <= 0 {
		return fmt.Errorf("--spins must be positive, got %d", flagSpins)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := slots.NewMachine(cfg, rand.New(rand.NewSource(seed)),
		slots.WithLogger(logger),
		slots.WithPresenter(logPresenter{logger: logger}),
	)
	if err != nil {
		return err
	}

	logger.Info("simulating", "spins", flagSpins, "seed", seed, "fps", flagFPS)
	records, sum, err := simulate(m, flagSpins, time.Second/time.Duration(flagFPS))
	if err != nil {
		return err
	}

	fmt.Println(spinTable(records, cfg.Grid.Columns))
	fmt.Println(summaryLine(sum))
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	winStyle    = cellStyle.Foreground(lipgloss.Color("2"))
	lossStyle   = cellStyle.Foreground(lipgloss.Color("1"))
	voidStyle   = cellStyle.Foreground(lipgloss.Color("245"))
)

// spinTable renders the records, one grid row per line in the symbols column.
func spinTable(records []spinRecord, columns int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Grid", "Outcome", "Delta", "Credits")

	for _, r := range records {
		t.Row(
			strconv.Itoa(r.Spin),
			gridText(r.Symbols, columns),
			r.Outcome.Summary(),
			fmt.Sprintf("%+d", r.Outcome.Delta),
			strconv.Itoa(r.Credits),
		)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerStyle
		}
		if col != 2 || row < 0 || row >= len(records) {
			return cellStyle
		}
		switch r := records[row]; {
		case r.Void:
			return voidStyle
		case r.Outcome.Won():
			return winStyle
		default:
			return lossStyle
		}
	})
	return t.String()
}

// gridText lays symbol IDs out in rows of the given width.
func gridText(ids []slots.SymbolID, columns int) string {
	if columns <= 0 {
		columns = len(ids)
	}
	var sb strings.Builder
	for i, id := range ids {
		switch {
		case i == 0:
		case i%columns == 0:
			sb.WriteByte('\n')
		default:
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%-2s", id)
	}
	return sb.String()
}

func summaryLine(s simulationSummary) string {
	return fmt.Sprintf("Spins: %d  Wins: %d  Losses: %d  Voids: %d  Net: %+d  Credits: %d",
		s.Spins, s.Wins, s.Losses, s.Voids, s.Net, s.Credits)
}
