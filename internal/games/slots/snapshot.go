package slots

// Snapshot captures the machine state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Spins         int
	Phase         string
	Credits       int
	Symbols       []SymbolID
	States        []FallState
	Connected     []bool
	Outcome       string
	Delta         int
	RevealPending bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	m := g.machine
	cells := m.Cells()
	s := Snapshot{
		Tick:          g.tick,
		Spins:         m.Spins(),
		Phase:         m.Phase().String(),
		Credits:       m.Credits(),
		Symbols:       make([]SymbolID, len(cells)),
		States:        make([]FallState, len(cells)),
		Connected:     make([]bool, len(cells)),
		RevealPending: m.RevealPending(),
	}
	for i, c := range cells {
		s.Symbols[i] = c.Symbol
		s.States[i] = c.State
		s.Connected[i] = c.Variant == VariantConnected
	}
	if out, ok := m.Outcome(); ok {
		s.Outcome = out.Summary()
		s.Delta = out.Delta
	}
	return s
}
