package core

import (
	"errors"
	"slices"
	"testing"
	"time"
)

type countingStepper struct {
	steps  int
	doneAt int
	failAt int
}

func (c *countingStepper) Step() error {
	c.steps++
	if c.failAt > 0 && c.steps == c.failAt {
		return ErrInvalidFacing
	}
	return nil
}

func (c *countingStepper) Done() bool { return c.doneAt > 0 && c.steps >= c.doneAt }

func newTestScheduler(t *testing.T, st Stepper, max int, opts ...SchedulerOption) (*Scheduler, *ManualClock) {
	t.Helper()
	clock := NewManualClock()
	opts = append([]SchedulerOption{WithClock(clock)}, opts...)
	s := NewScheduler(st, 10*time.Millisecond, max, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s, clock
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	s, clock := newTestScheduler(t, &countingStepper{}, 100)
	for i := 0; i < 3; i++ {
		if err := s.Start(); err != nil {
			t.Fatal(err)
		}
	}
	if n := clock.Active(); n != 1 {
		t.Fatalf("expected exactly one ticker, got %d", n)
	}
	if !s.Running() {
		t.Fatal("expected running after Start")
	}
}

func TestSchedulerTicksAdvanceIteration(t *testing.T) {
	st := &countingStepper{}
	s, clock := newTestScheduler(t, st, 100)
	if s.Iteration() != 0 {
		t.Fatal("fresh scheduler must start at iteration 0")
	}
	_ = s.Start()
	for i := 0; i < 3; i++ {
		if clock.Tick() != 1 {
			t.Fatalf("tick %d not delivered", i)
		}
	}
	if got := s.Iteration(); got != 3 {
		t.Fatalf("iteration %d, expected 3", got)
	}
	if st.steps != 3 {
		t.Fatalf("stepper ran %d times, expected 3", st.steps)
	}
}

func TestSchedulerPauseStopsTicks(t *testing.T) {
	s, clock := newTestScheduler(t, &countingStepper{}, 100)
	_ = s.Start()
	clock.Tick()
	if err := s.Pause(); err != nil {
		t.Fatal(err)
	}
	if clock.Tick() != 0 {
		t.Fatal("tick delivered after Pause")
	}
	if s.Running() {
		t.Fatal("expected stopped after Pause")
	}
	if got := s.Iteration(); got != 1 {
		t.Fatalf("iteration %d, expected 1", got)
	}

	_ = s.Start()
	clock.Tick()
	_ = s.Stop()
	if clock.Tick() != 0 || s.Iteration() != 2 {
		t.Fatal("Stop must cancel the ticker")
	}
}

func TestSchedulerStopsAtMaxIterations(t *testing.T) {
	s, clock := newTestScheduler(t, &countingStepper{}, 3)
	_ = s.Start()
	for i := 0; i < 5; i++ {
		clock.Tick()
	}
	if got := s.Iteration(); got != 3 {
		t.Fatalf("iteration %d exceeded max 3", got)
	}
	if s.Running() {
		t.Fatal("expected stopped once max iterations reached")
	}
	if err := s.Step(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Step: expected ErrExhausted, got %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrExhausted) {
		t.Fatalf("Start: expected ErrExhausted, got %v", err)
	}
	_ = s.Reset()
	if s.Iteration() != 0 {
		t.Fatal("Reset must zero the iteration count")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start after Reset: %v", err)
	}
}

func TestSchedulerNaturalTermination(t *testing.T) {
	s, clock := newTestScheduler(t, &countingStepper{doneAt: 2}, 100)
	_ = s.Start()
	clock.Tick()
	clock.Tick()
	if clock.Tick() != 0 {
		t.Fatal("tick delivered after natural termination")
	}
	if s.Running() || s.Iteration() != 2 {
		t.Fatalf("expected stopped at iteration 2, got running=%v iteration=%d", s.Running(), s.Iteration())
	}
}

func TestSchedulerFaultHalts(t *testing.T) {
	st := &countingStepper{failAt: 2}
	s, clock := newTestScheduler(t, st, 100)
	_ = s.Start()
	clock.Tick()
	clock.Tick()
	if s.Running() {
		t.Fatal("expected fault to stop the scheduler")
	}
	if err := s.Err(); !errors.Is(err, ErrInvalidFacing) {
		t.Fatalf("Err() = %v, expected ErrInvalidFacing", err)
	}
	if err := s.Start(); !errors.Is(err, ErrHalted) {
		t.Fatalf("Start after fault: expected ErrHalted, got %v", err)
	}
	if err := s.Step(); !errors.Is(err, ErrHalted) {
		t.Fatalf("Step after fault: expected ErrHalted, got %v", err)
	}
	_ = s.Reset()
	if s.Err() != nil {
		t.Fatal("Reset must clear the fault")
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
}

func TestSchedulerSetIntervalRestartsTicker(t *testing.T) {
	s, clock := newTestScheduler(t, &countingStepper{}, 100)
	if err := s.SetInterval(40 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if clock.Active() != 0 {
		t.Fatal("SetInterval must not start a stopped scheduler")
	}
	_ = s.Start()
	if err := s.SetInterval(20 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := clock.Periods(); !slices.Equal(got, []time.Duration{20 * time.Millisecond}) {
		t.Fatalf("periods %v, expected a single 20ms ticker", got)
	}
	if !s.Running() {
		t.Fatal("interval change must keep the scheduler running")
	}
	if err := s.SetInterval(0); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSchedulerManualStepWhileStopped(t *testing.T) {
	st := &countingStepper{}
	s, clock := newTestScheduler(t, st, 100)
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if s.Running() || clock.Active() != 0 {
		t.Fatal("Step must not start the ticker")
	}
	if s.Iteration() != 1 {
		t.Fatalf("iteration %d, expected 1", s.Iteration())
	}
}

func TestSchedulerStopHook(t *testing.T) {
	var reasons []StopReason
	hook := WithStopHook(func(r StopReason, _ int, _ error) { reasons = append(reasons, r) })
	s, clock := newTestScheduler(t, &countingStepper{}, 2, hook)
	_ = s.Start()
	_ = s.Pause()
	_ = s.Pause()
	_ = s.Start()
	clock.Tick()
	clock.Tick()
	// Barrier so the hook's writes are visible here.
	_ = s.Iteration()
	want := []StopReason{StopPaused, StopMaxIterations}
	if !slices.Equal(reasons, want) {
		t.Fatalf("stop reasons %v, expected %v", reasons, want)
	}
}

func TestSchedulerClosed(t *testing.T) {
	s := NewScheduler(&countingStepper{}, time.Second, 10, WithClock(NewManualClock()))
	_ = s.Start()
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatal("second Close must be a no-op")
	}
}
