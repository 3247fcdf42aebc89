package slots

// ScoreTracker owns the credit total. The total has no floor or ceiling.
type ScoreTracker struct {
	total int
	pulse Pulse
}

// NewScoreTracker creates a tracker holding start credits.
func NewScoreTracker(start int, pulse Pulse) *ScoreTracker {
	return &ScoreTracker{total: start, pulse: pulse}
}

// ApplyDelta adds points to the total, starts the emphasis pulse and
// returns the new total.
func (s *ScoreTracker) ApplyDelta(points int) int {
	s.total += points
	s.pulse.Trigger()
	return s.total
}

// Current returns the credit total.
func (s *ScoreTracker) Current() int {
	return s.total
}

// Set replaces the total without a pulse. Used when credits are reset.
func (s *ScoreTracker) Set(total int) {
	s.total = total
}

// Tick advances the emphasis pulse.
func (s *ScoreTracker) Tick(frames float64) {
	s.pulse.Step(frames)
}

// Scale returns the current emphasis scale (1 when idle).
func (s *ScoreTracker) Scale() float64 {
	return s.pulse.Scale()
}
