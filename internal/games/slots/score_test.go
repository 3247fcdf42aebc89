package slots

import (
	"math"
	"testing"
	"time"
)

func TestApplyDeltaOrderIndependent(t *testing.T) {
	split := NewScoreTracker(100, NewPulse(0.02, 1.2))
	for _, d := range []int{30, -10} {
		split.ApplyDelta(d)
	}
	split.ApplyDelta(50)

	single := NewScoreTracker(100, NewPulse(0.02, 1.2))
	for _, d := range []int{30, -10, 50} {
		single.ApplyDelta(d)
	}

	if split.Current() != single.Current() || single.Current() != 170 {
		t.Errorf("totals = %d and %d, want 170", split.Current(), single.Current())
	}
}

func TestScoreGoesNegative(t *testing.T) {
	s := NewScoreTracker(5, NewPulse(0.02, 1.2))
	if got := s.ApplyDelta(LossPoints); got != -5 {
		t.Errorf("ApplyDelta() = %d, want -5 (no floor)", got)
	}
}

func TestScorePulse(t *testing.T) {
	s := NewScoreTracker(0, NewPulse(0.02, 1.2))
	if s.Scale() != 1 {
		t.Fatalf("idle scale = %v, want 1", s.Scale())
	}

	s.ApplyDelta(30)
	peak := 1.0
	for range 200 {
		s.Tick(1)
		peak = max(peak, s.Scale())
	}
	if peak <= 1.2 {
		t.Errorf("pulse peaked at %.2f, want above 1.2", peak)
	}
	if s.Scale() != 1 {
		t.Errorf("scale after pulse = %v, want 1", s.Scale())
	}
}

func TestFade(t *testing.T) {
	f := NewFade(0.02)
	f.In()
	if f.Alpha() != 0 || !f.Active() {
		t.Fatalf("In() should start hidden and active")
	}

	f.Step(25)
	if math.Abs(f.Alpha()-0.5) > 1e-9 {
		t.Errorf("alpha after 25 frames = %v, want 0.5", f.Alpha())
	}
	f.Step(100)
	if f.Alpha() != 1 || f.Active() {
		t.Errorf("alpha = %v active = %v, want 1 and idle", f.Alpha(), f.Active())
	}

	f.Out()
	f.Step(10)
	if a := f.Alpha(); a >= 1 || a <= 0 {
		t.Errorf("alpha mid fade-out = %v", a)
	}
	f.Step(1000)
	if f.Alpha() != 0 || f.Active() {
		t.Errorf("alpha = %v active = %v, want 0 and idle", f.Alpha(), f.Active())
	}
}

func TestDeferred(t *testing.T) {
	var d Deferred
	fired := 0

	d.Schedule(500*time.Millisecond, func() { fired++ })
	if d.Advance(499 * time.Millisecond) {
		t.Error("fired early")
	}
	if !d.Advance(time.Millisecond) || fired != 1 {
		t.Errorf("fired = %d, want 1 at the deadline", fired)
	}
	if d.Advance(time.Second) || fired != 1 {
		t.Error("fired twice")
	}

	d.Schedule(time.Millisecond, func() { fired++ })
	if !d.Cancel() {
		t.Error("Cancel() should report a pending task")
	}
	d.Advance(time.Second)
	if fired != 1 || d.Pending() {
		t.Error("cancelled task ran")
	}
	if d.Cancel() {
		t.Error("Cancel() on idle task should report false")
	}
}
