package slots

import "github.com/vovakirdan/tui-slots/internal/core"

type pulsePhase int

const (
	pulseIdle pulsePhase = iota
	pulseGrowing
	pulseShrinking
)

// Pulse scales up to a peak and back down to 1.
type Pulse struct {
	rate  float64
	peak  float64
	scale float64
	phase pulsePhase
}

// NewPulse creates an idle pulse at scale 1.
func NewPulse(rate, peak float64) Pulse {
	return Pulse{rate: rate, peak: peak, scale: 1}
}

// Trigger (re)starts the pulse from its current scale.
func (p *Pulse) Trigger() {
	p.phase = pulseGrowing
}

// Step advances the pulse by frames.
func (p *Pulse) Step(frames float64) {
	switch p.phase {
	case pulseGrowing:
		p.scale += p.rate * frames
		if p.scale > p.peak {
			p.phase = pulseShrinking
		}
	case pulseShrinking:
		p.scale -= p.rate * frames
		if p.scale <= 1 {
			p.scale = 1
			p.phase = pulseIdle
		}
	}
}

// Scale returns the current scale factor.
func (p Pulse) Scale() float64 {
	return p.scale
}

// Active reports whether the pulse is still moving.
func (p Pulse) Active() bool {
	return p.phase != pulseIdle
}

// Fade moves an alpha value toward fully visible or fully hidden.
type Fade struct {
	rate  float64
	alpha float64
	dir   float64 // +1 fading in, -1 fading out, 0 idle
}

// NewFade creates a hidden, idle fade.
func NewFade(rate float64) Fade {
	return Fade{rate: rate}
}

// In restarts from hidden and fades to visible.
func (f *Fade) In() {
	f.alpha = 0
	f.dir = 1
}

// Out fades from the current alpha to hidden.
func (f *Fade) Out() {
	f.dir = -1
}

// Step advances the fade by frames.
func (f *Fade) Step(frames float64) {
	if f.dir == 0 {
		return
	}
	f.alpha = core.ClampF(f.alpha+f.dir*f.rate*frames, 0, 1)
	if f.alpha == 0 || f.alpha == 1 {
		f.dir = 0
	}
}

// Alpha returns the current opacity in [0, 1].
func (f Fade) Alpha() float64 {
	return f.alpha
}

// Active reports whether the fade is still moving.
func (f Fade) Active() bool {
	return f.dir != 0
}
