package core

import (
	"fmt"
	"sync"
	"time"
)

// State is the scheduler's run state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// StopReason records why the scheduler left the running state.
type StopReason int

const (
	StopPaused StopReason = iota
	StopRequested
	StopTerminal
	StopMaxIterations
	StopFault
	StopReset
)

func (r StopReason) String() string {
	switch r {
	case StopPaused:
		return "paused"
	case StopRequested:
		return "stopped"
	case StopTerminal:
		return "terminal"
	case StopMaxIterations:
		return "max-iterations"
	case StopFault:
		return "fault"
	case StopReset:
		return "reset"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// Stepper is the per-tick behavior the scheduler drives.
type Stepper interface {
	Step() error
	Done() bool
}

// Scheduler advances a Stepper once per interval on a dedicated goroutine.
// Ticks and every command submitted through Do run on that goroutine, one at
// a time, so the stepper's state needs no locking.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	maxIter  int
	stepper  Stepper
	onStop   func(reason StopReason, iteration int, err error)

	// Owned by the loop goroutine.
	state     State
	iteration int
	err       error
	ticker    Ticker
	tickC     <-chan time.Time

	cmds      chan command
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

type command struct {
	fn    func(*Loop) error
	reply chan error
}

// SchedulerOption customizes a Scheduler.
type SchedulerOption func(*Scheduler)

// WithClock replaces the wall clock, typically with a ManualClock in tests.
func WithClock(c Clock) SchedulerOption {
	return func(s *Scheduler) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithStopHook registers fn to run on the loop goroutine whenever the
// scheduler leaves the running state or a step fails. fn must not call back
// into the scheduler.
func WithStopHook(fn func(reason StopReason, iteration int, err error)) SchedulerOption {
	return func(s *Scheduler) { s.onStop = fn }
}

// NewScheduler starts the loop goroutine in the stopped state. Call Close to
// release it.
func NewScheduler(stepper Stepper, interval time.Duration, maxIterations int, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		clock:    SystemClock{},
		interval: interval,
		maxIter:  maxIterations,
		stepper:  stepper,
		cmds:     make(chan command),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		select {
		case <-s.quit:
			s.stopTicker()
			return
		case cmd := <-s.cmds:
			cmd.reply <- cmd.fn(&Loop{s: s})
		case <-s.tickC:
			if s.state == Running {
				_ = s.advance()
			}
		}
	}
}

// Do runs fn on the loop goroutine, serialized with ticks, and returns its
// error. fn must not call Do itself.
func (s *Scheduler) Do(fn func(*Loop) error) error {
	reply := make(chan error, 1)
	select {
	case s.cmds <- command{fn: fn, reply: reply}:
	case <-s.done:
		return ErrClosed
	}
	return <-reply
}

// Close stops the ticker and the loop goroutine. It is safe to call twice.
func (s *Scheduler) Close() error {
	s.closeOnce.Do(func() { close(s.quit) })
	<-s.done
	return nil
}

// Start begins ticking. Starting a running scheduler is a no-op.
func (s *Scheduler) Start() error { return s.Do(func(l *Loop) error { return l.Start() }) }

// Pause cancels the ticker; no further tick runs once Pause returns.
func (s *Scheduler) Pause() error { return s.Do(func(l *Loop) error { l.Pause(); return nil }) }

// Stop is Pause with a different stop reason reported to the hook.
func (s *Scheduler) Stop() error { return s.Do(func(l *Loop) error { l.Stop(); return nil }) }

// Step runs a single tick regardless of the run state.
func (s *Scheduler) Step() error { return s.Do(func(l *Loop) error { return l.Step() }) }

// Reset forces the stopped state and zeroes the iteration count. It does not
// touch the stepper; callers rebuild it inside Do.
func (s *Scheduler) Reset() error { return s.Do(func(l *Loop) error { l.Reset(); return nil }) }

// SetInterval changes the tick period, restarting the ticker when running.
func (s *Scheduler) SetInterval(d time.Duration) error {
	return s.Do(func(l *Loop) error { return l.SetInterval(d) })
}

// Running reports whether the scheduler is ticking.
func (s *Scheduler) Running() bool {
	var running bool
	_ = s.Do(func(l *Loop) error { running = l.Running(); return nil })
	return running
}

// Iteration returns the number of ticks applied since the last reset.
func (s *Scheduler) Iteration() int {
	var n int
	_ = s.Do(func(l *Loop) error { n = l.Iteration(); return nil })
	return n
}

// Err returns the error that halted the scheduler, if any.
func (s *Scheduler) Err() error {
	var err error
	_ = s.Do(func(l *Loop) error { err = l.Err(); return nil })
	return err
}

func (s *Scheduler) startTicker() {
	s.ticker = s.clock.NewTicker(s.interval)
	s.tickC = s.ticker.C()
}

func (s *Scheduler) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.ticker = nil
	s.tickC = nil
}

func (s *Scheduler) halt(reason StopReason, err error) {
	wasRunning := s.state == Running
	s.stopTicker()
	s.state = Stopped
	if s.onStop != nil && (wasRunning || err != nil) {
		s.onStop(reason, s.iteration, err)
	}
}

func (s *Scheduler) advance() error {
	if s.err != nil {
		return fmt.Errorf("step: %w: %v", ErrHalted, s.err)
	}
	if s.iteration >= s.maxIter {
		s.halt(StopMaxIterations, nil)
		return ErrExhausted
	}
	s.iteration++
	if err := s.stepper.Step(); err != nil {
		s.err = err
		s.halt(StopFault, err)
		return err
	}
	switch {
	case s.stepper.Done():
		s.halt(StopTerminal, nil)
	case s.iteration >= s.maxIter:
		s.halt(StopMaxIterations, nil)
	}
	return nil
}

// Loop is the scheduler as seen from functions running on its goroutine.
type Loop struct {
	s *Scheduler
}

// Start begins ticking unless already running, halted or exhausted.
func (l *Loop) Start() error {
	s := l.s
	if s.err != nil {
		return fmt.Errorf("start: %w: %v", ErrHalted, s.err)
	}
	if s.state == Running {
		return nil
	}
	if s.iteration >= s.maxIter {
		return ErrExhausted
	}
	s.startTicker()
	s.state = Running
	return nil
}

// Pause cancels the ticker.
func (l *Loop) Pause() { l.s.halt(StopPaused, nil) }

// Stop cancels the ticker.
func (l *Loop) Stop() { l.s.halt(StopRequested, nil) }

// Step applies one tick immediately.
func (l *Loop) Step() error { return l.s.advance() }

// Reset stops the scheduler, zeroes the iteration count and clears any fault.
func (l *Loop) Reset() {
	l.s.halt(StopReset, nil)
	l.s.iteration = 0
	l.s.err = nil
}

// SetInterval replaces the tick period. A running scheduler pauses and
// restarts with the new period.
func (l *Loop) SetInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("interval %v: %w", d, ErrInvalidConfig)
	}
	s := l.s
	s.interval = d
	if s.state == Running {
		s.stopTicker()
		s.startTicker()
	}
	return nil
}

// SetMaxIterations replaces the iteration cap.
func (l *Loop) SetMaxIterations(n int) error {
	if n <= 0 {
		return fmt.Errorf("max iterations %d: %w", n, ErrInvalidConfig)
	}
	l.s.maxIter = n
	return nil
}

// Running reports whether the scheduler is ticking.
func (l *Loop) Running() bool { return l.s.state == Running }

// State returns the current run state.
func (l *Loop) State() State { return l.s.state }

// Iteration returns the number of ticks applied since the last reset.
func (l *Loop) Iteration() int { return l.s.iteration }

// Interval returns the tick period.
func (l *Loop) Interval() time.Duration { return l.s.interval }

// MaxIterations returns the iteration cap.
func (l *Loop) MaxIterations() int { return l.s.maxIter }

// Err returns the fault that halted the scheduler, if any.
func (l *Loop) Err() error { return l.s.err }
