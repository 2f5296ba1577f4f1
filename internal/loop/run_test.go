package loop

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/spaceshooter/internal/config"
	"github.com/tomz197/spaceshooter/internal/input"
	"github.com/tomz197/spaceshooter/internal/loop/mocks"
	"github.com/tomz197/spaceshooter/internal/random"
)

type recordingFilter struct {
	calls []time.Duration
}

func (f *recordingFilter) Apply(_ *image.RGBA, elapsed time.Duration) {
	f.calls = append(f.calls, elapsed)
}

func newFastSession(t *testing.T) *Session {
	t.Helper()
	s := config.Default()
	s.TickRate = 1000
	return NewSession(s, random.New(1), nil)
}

func TestRunStopsOnQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockInputSource(ctrl)
	out := mocks.NewMockPresenter(ctrl)
	clock := mocks.NewMockClock(ctrl)

	gomock.InOrder(
		src.EXPECT().Poll().Return(input.Snapshot{}).Times(2),
		src.EXPECT().Poll().Return(input.Snapshot{Quit: true}),
	)
	out.EXPECT().Present(gomock.Any()).Return(nil).Times(3)
	var now time.Duration
	clock.EXPECT().Now().DoAndReturn(func() time.Duration {
		now += tick
		return now
	}).Times(3)

	s := newFastSession(t)
	filter := &recordingFilter{}
	if err := Run(context.Background(), s, src, out, RunOptions{Filter: filter, Clock: clock}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	st := s.State()
	if st.Reason != ReasonQuit || st.Ticks != 2 {
		t.Errorf("Expected quit after 2 ticks, got %+v", st)
	}
	if len(filter.calls) != 3 || filter.calls[2] != 3*tick {
		t.Errorf("Expected filter applied per frame with session time, got %v", filter.calls)
	}
}

func TestRunPresentsFrameSizedToScreen(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockInputSource(ctrl)
	out := mocks.NewMockPresenter(ctrl)

	src.EXPECT().Poll().Return(input.Snapshot{Quit: true})
	out.EXPECT().Present(gomock.Any()).DoAndReturn(func(frame *image.RGBA) error {
		if frame.Bounds() != image.Rect(0, 0, 800, 600) {
			t.Errorf("Expected 800x600 frame, got %v", frame.Bounds())
		}
		return nil
	})

	if err := Run(context.Background(), newFastSession(t), src, out, RunOptions{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunWrapsPresenterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockInputSource(ctrl)
	out := mocks.NewMockPresenter(ctrl)

	errBoom := errors.New("boom")
	src.EXPECT().Poll().Return(input.Snapshot{})
	out.EXPECT().Present(gomock.Any()).Return(errBoom)

	err := Run(context.Background(), newFastSession(t), src, out, RunOptions{})
	if !errors.Is(err, errBoom) {
		t.Errorf("Expected wrapped presenter error, got %v", err)
	}
}

func TestRunCancelledContextQuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockInputSource(ctrl)
	out := mocks.NewMockPresenter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src.EXPECT().Poll().Return(input.Snapshot{})
	out.EXPECT().Present(gomock.Any()).Return(nil)

	s := newFastSession(t)
	if err := Run(ctx, s, src, out, RunOptions{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.State().Reason != ReasonQuit {
		t.Errorf("Expected cancellation to quit, got %v", s.State().Reason)
	}
}
