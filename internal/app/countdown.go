package app

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Countdown runs a task on a fixed interval until stopped. Start and Stop
// may be called any number of times; at most one ticker is live at once.
// The task receives the stop channel of the run that fired it, closed once
// that run is cancelled, so a task that blocks can tell it went stale.
type Countdown struct {
	clock    clockwork.Clock
	interval time.Duration
	task     func(stop <-chan struct{})

	mu   sync.Mutex
	stop chan struct{} // non-nil while running
}

// NewCountdown creates a stopped countdown
func NewCountdown(clock clockwork.Clock, interval time.Duration, task func(stop <-chan struct{})) *Countdown {
	return &Countdown{
		clock:    clock,
		interval: interval,
		task:     task,
	}
}

// Start begins ticking. It returns false if the countdown was already running.
func (c *Countdown) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		return false
	}

	stop := make(chan struct{})
	c.stop = stop
	ticker := c.clock.NewTicker(c.interval)
	go c.run(ticker, stop)

	return true
}

// Stop cancels the ticker. It returns false if the countdown was not running.
func (c *Countdown) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop == nil {
		return false
	}

	close(c.stop)
	c.stop = nil
	return true
}

// Running reports whether a ticker is live
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stop != nil
}

// run delivers ticks until stop is closed
func (c *Countdown) run(ticker clockwork.Ticker, stop <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			// A tick can race with Stop; drop it if we lost.
			select {
			case <-stop:
				return
			default:
			}
			c.task(stop)
		}
	}
}
