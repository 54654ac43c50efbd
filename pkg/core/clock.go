package core

import (
	"sync"
	"time"
)

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. The scheduler takes one so tests can drive ticks by
// hand instead of waiting on the wall clock.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the wall-clock implementation backed by time.Ticker.
type SystemClock struct{}

// NewTicker wraps time.NewTicker. The underlying ticker drops ticks for slow
// receivers, so ticks never queue up behind a long step.
func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock hands out tickers that only fire when Tick is called.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock returns a ManualClock starting at the Unix epoch.
func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0)}
}

// NewTicker registers a ticker that fires on Tick.
func (c *ManualClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{period: d, c: make(chan time.Time), stopped: make(chan struct{})}
	c.tickers = append(c.tickers, t)
	return t
}

// Tick advances the clock by one period of each live ticker and delivers a
// tick to it, blocking until the receiver has taken it. It reports how many
// tickers received a tick.
func (c *ManualClock) Tick() int {
	c.mu.Lock()
	live := c.tickers[:0]
	for _, t := range c.tickers {
		if !t.isStopped() {
			live = append(live, t)
		}
	}
	c.tickers = live
	targets := append([]*manualTicker(nil), live...)
	c.mu.Unlock()

	delivered := 0
	for _, t := range targets {
		c.mu.Lock()
		c.now = c.now.Add(t.period)
		now := c.now
		c.mu.Unlock()
		select {
		case t.c <- now:
			delivered++
		case <-t.stopped:
		}
	}
	return delivered
}

// Active reports how many tickers are currently running.
func (c *ManualClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

// Periods lists the period of every running ticker.
func (c *ManualClock) Periods() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []time.Duration
	for _, t := range c.tickers {
		if !t.isStopped() {
			out = append(out, t.period)
		}
	}
	return out
}

type manualTicker struct {
	period  time.Duration
	c       chan time.Time
	once    sync.Once
	stopped chan struct{}
}

func (t *manualTicker) C() <-chan time.Time { return t.c }

func (t *manualTicker) Stop() { t.once.Do(func() { close(t.stopped) }) }

func (t *manualTicker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}
