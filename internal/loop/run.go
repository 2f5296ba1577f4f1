package loop

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/postfx"
	"github.com/tomz197/spaceshooter/internal/render"
)

//go:generate go tool mockgen -destination=./mocks/loop_mock.go -package=mocks . InputSource,Presenter,Clock

// InputSource yields one input snapshot per tick.
type InputSource interface {
	Poll() input.Snapshot
}

// Presenter shows a finished frame.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// Clock reports session time.
type Clock interface {
	Now() time.Duration
}

type wallClock struct {
	start time.Time
}

// NewClock returns a Clock measuring wall time since its creation.
func NewClock() Clock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Now() time.Duration {
	return time.Since(c.start)
}

// RunOptions configures Run. Zero fields fall back to defaults.
type RunOptions struct {
	Filter postfx.Filter // Applied to every frame before presenting
	Clock  Clock
}

// Run drives the session with the Input → Update → Draw cycle at the session's
// tick rate until it stops. Cancelling ctx is treated as a quit request, so the
// final frame is still presented.
func Run(ctx context.Context, s *Session, src InputSource, out Presenter, opts RunOptions) error {
	if opts.Filter == nil {
		opts.Filter = postfx.Passthrough{}
	}
	if opts.Clock == nil {
		opts.Clock = NewClock()
	}

	renderer := render.New(s.Settings())
	frameTime := s.Settings().TickDuration()

	for s.Running() {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := src.Poll()
		if ctx.Err() != nil {
			in.Quit = true
		}

		// ===== UPDATE PHASE =====
		now := opts.Clock.Now()
		s.Tick(in, now)

		// ===== DRAW PHASE =====
		frame := renderer.Render(s.Scene())
		opts.Filter.Apply(frame, now)
		if err := out.Present(frame); err != nil {
			return fmt.Errorf("failed to present frame: %w", err)
		}

		// ===== FRAME TIMING =====
		if !s.Running() {
			break
		}
		elapsed := time.Since(frameStart)
		if elapsed < frameTime {
			select {
			case <-ctx.Done():
			case <-time.After(frameTime - elapsed):
			}
		}
	}

	return nil
}
