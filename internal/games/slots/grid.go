package slots

import (
	"errors"
	"fmt"
	"math/rand"
)

// FallState is the animation state of one cell within a spin.
// A cell only moves forward: Pending -> Falling -> Settled.
type FallState int

const (
	Pending FallState = iota // Waiting out its row delay
	Falling                  // Moving toward its resting offset
	Settled                  // At rest
)

// String returns a human-readable name for the state.
func (s FallState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Falling:
		return "falling"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Variant selects which visual of a symbol a cell shows.
type Variant int

const (
	VariantBase      Variant = iota
	VariantConnected         // Shown after the symbol won
)

// Cell is one grid position together with its occupant and fall state.
type Cell struct {
	Row, Column   int
	Symbol        SymbolID
	Variant       Variant
	Offset        float64 // Current vertical position in layout units
	RestingOffset float64 // Target position derived from the row
	State         FallState
	StartDelay    float64 // Frames left before the cell starts falling
}

// Layout holds the fixed geometry of a grid.
type Layout struct {
	Rows       int
	Columns    int
	SymbolSize float64
	TopPadding float64
	RowDelay   float64
}

// Height returns the height of all rows in layout units.
func (l Layout) Height() float64 {
	return float64(l.Rows) * l.SymbolSize
}

// RestingOffset returns the settled position of a row.
func (l Layout) RestingOffset(row int) float64 {
	return l.TopPadding + float64(row)*l.SymbolSize
}

// ErrOutOfBounds is returned when a row/column pair is outside the grid.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Grid owns the cells of the machine. Its dimensions never change.
type Grid struct {
	layout Layout
	cells  []Cell // Row-major
}

// NewGrid creates an empty grid with every cell at rest and no symbol.
func NewGrid(layout Layout) *Grid {
	g := &Grid{layout: layout}
	g.cells = make([]Cell, layout.Rows*layout.Columns)
	for row := range layout.Rows {
		for col := range layout.Columns {
			resting := layout.RestingOffset(row)
			g.cells[row*layout.Columns+col] = Cell{
				Row:           row,
				Column:        col,
				Offset:        resting,
				RestingOffset: resting,
				State:         Settled,
			}
		}
	}
	return g
}

// Layout returns the grid geometry.
func (g *Grid) Layout() Layout {
	return g.layout
}

// Reset fills every cell with a fresh random symbol and lifts it above the
// visible area. Lower rows get shorter start delays, so the grid fills from
// the bottom up. The new cells replace the old ones in a single assignment.
func (g *Grid) Reset(rng *rand.Rand, catalog *Catalog) {
	l := g.layout
	height := l.Height()
	cells := make([]Cell, 0, len(g.cells))

	for row := range l.Rows {
		resting := l.RestingOffset(row)
		delay := float64(l.Rows-1-row) * l.RowDelay
		for col := range l.Columns {
			id := catalog.RandomSymbol(rng)
			// Always at least one grid height plus a cell above the slot
			start := resting - (l.SymbolSize + height) - rng.Float64()*height
			cells = append(cells, Cell{
				Row:           row,
				Column:        col,
				Symbol:        id,
				Offset:        start,
				RestingOffset: resting,
				State:         Pending,
				StartDelay:    delay,
			})
		}
	}

	g.cells = cells
}

// SymbolIDs returns the occupants in row-major order.
func (g *Grid) SymbolIDs() []SymbolID {
	ids := make([]SymbolID, len(g.cells))
	for i, c := range g.cells {
		ids[i] = c.Symbol
	}
	return ids
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Cell returns the cell at row, col.
func (g *Grid) Cell(row, col int) (Cell, error) {
	i, err := g.indexOf(row, col)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

// UpdateCell swaps the visual identity of one cell.
func (g *Grid) UpdateCell(row, col int, id SymbolID, v Variant) (Cell, error) {
	i, err := g.indexOf(row, col)
	if err != nil {
		return Cell{}, err
	}
	g.cells[i].Symbol = id
	g.cells[i].Variant = v
	return g.cells[i], nil
}

// AllSettled reports whether every cell is at rest.
func (g *Grid) AllSettled() bool {
	for _, c := range g.cells {
		if c.State != Settled {
			return false
		}
	}
	return true
}

func (g *Grid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.layout.Rows || col < 0 || col >= g.layout.Columns {
		return 0, fmt.Errorf("slots: %w: (%d, %d) in %dx%d grid",
			ErrOutOfBounds, row, col, g.layout.Rows, g.layout.Columns)
	}
	return row*g.layout.Columns + col, nil
}
