package engine

import (
	"context"

	"github.com/olivierh59500/backdrop/internal/surface"
)

// Scheduler runs a callback before the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Animate starts the self-rescheduling frame loop: every frame draws onto
// dst and then asks sched for the next one. There is no way to stop it;
// it lives as long as the host keeps calling back.
func (e *Engine) Animate(dst surface.Surface, sched Scheduler) {
	var frame func()
	frame = func() {
		e.Step(dst)
		sched.RequestFrame(frame)
	}
	sched.RequestFrame(frame)
}

// Stepper is a Scheduler driven by hand, for tests and headless rendering.
type Stepper struct {
	pending func()
}

func (s *Stepper) RequestFrame(fn func()) { s.pending = fn }

// Tick runs the pending frame, if any, and reports whether one ran.
func (s *Stepper) Tick() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}

// Run ticks up to frames times, stopping early when ctx is done or nothing
// is pending.
func (s *Stepper) Run(ctx context.Context, frames int) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Tick() {
			return nil
		}
	}
	return nil
}
