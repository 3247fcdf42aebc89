package slots

// FallScheduler advances every unsettled cell of a grid once per tick and
// reports completion exactly once per arming.
type FallScheduler struct {
	grid    *Grid
	speed   float64 // Layout units per frame
	running bool
}

// NewFallScheduler creates an idle scheduler for grid.
func NewFallScheduler(grid *Grid, speed float64) *FallScheduler {
	return &FallScheduler{grid: grid, speed: speed}
}

// Arm starts scheduling the grid's current cells. Call after Grid.Reset.
func (s *FallScheduler) Arm() {
	s.running = true
}

// Disarm stops scheduling without reporting completion.
func (s *FallScheduler) Disarm() {
	s.running = false
}

// Running reports whether the scheduler is waiting for cells to settle.
func (s *FallScheduler) Running() bool {
	return s.running
}

// Tick advances all cells by frames (60 Hz frame units).
// It returns true on the single tick in which every cell is settled; after
// that it returns false until the next Arm.
//
// A tick long enough to cover a cell's whole drop takes it straight from
// Pending to Settled; Falling is only observed between ticks mid-drop.
func (s *FallScheduler) Tick(frames float64) bool {
	if !s.running || frames <= 0 {
		return false
	}

	allSettled := true
	cells := s.grid.cells
	for i := range cells {
		c := &cells[i]
		switch {
		case c.StartDelay > 0:
			// Delay expiry does not move the cell in the same tick
			c.StartDelay = max(c.StartDelay-frames, 0)
			allSettled = false
		case c.Offset < c.RestingOffset:
			c.Offset += s.speed * frames
			if c.Offset >= c.RestingOffset {
				c.Offset = c.RestingOffset
				c.State = Settled
			} else {
				c.State = Falling
				allSettled = false
			}
		default:
			c.State = Settled
		}
	}

	if allSettled {
		s.running = false
		return true
	}
	return false
}
