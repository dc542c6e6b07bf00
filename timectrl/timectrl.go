package timectrl

import (
	"sync"
	"time"
)

// Clock is the simulation clock abstraction consumed by the data store. The
// store uses the mode to choose between live semantics (platforms never
// expire) and file-replay semantics (a platform outside its recorded span is
// expired). A store with no bound clock behaves as file replay.
type Clock interface {
	// Now returns the current scenario time in seconds.
	Now() float64
	// IsLiveMode reports whether the clock is driven by incoming live data
	// rather than recorded file playback.
	IsLiveMode() bool
}

// Mode describes how a Controller advances scenario time.
type Mode int

const (
	// Replay steps through recorded data; entities expire outside their span.
	Replay Mode = iota
	// Live follows incoming data; entities never expire.
	Live
)

// Controller drives scenario time and notifies registered listeners on every
// step. It implements Clock for the data store.
type Controller struct {
	mu        sync.RWMutex
	StartTime float64
	Tick      float64
	Mode      Mode

	currentTime float64

	listeners []func(float64)
}

// NewController constructs a controller positioned at start, stepping by tick
// seconds.
func NewController(start, tick float64, mode Mode) *Controller {
	return &Controller{
		StartTime:   start,
		Tick:        tick,
		Mode:        mode,
		currentTime: start,
	}
}

// Now returns the current scenario time in seconds. Implements Clock.
func (c *Controller) Now() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentTime
}

// IsLiveMode reports whether the controller runs in live mode. Implements
// Clock.
func (c *Controller) IsLiveMode() bool {
	return c.Mode == Live
}

// AddListener registers a callback invoked with the new scenario time on
// every step.
func (c *Controller) AddListener(fn func(float64)) {
	c.listeners = append(c.listeners, fn)
}

// Step advances one tick synchronously and notifies listeners. It returns
// the new scenario time.
func (c *Controller) Step() float64 {
	c.mu.Lock()
	c.currentTime += c.Tick
	now := c.currentTime
	c.mu.Unlock()

	for _, fn := range c.listeners {
		fn(now)
	}
	return now
}

// Seek jumps the clock to an absolute scenario time and notifies listeners.
func (c *Controller) Seek(t float64) {
	c.mu.Lock()
	c.currentTime = t
	c.mu.Unlock()

	for _, fn := range c.listeners {
		fn(t)
	}
}

// Run steps the controller in a separate goroutine at the given wall-clock
// interval until the scenario has advanced by duration seconds. It returns a
// channel that is closed when the controller finishes.
func (c *Controller) Run(interval time.Duration, duration float64) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		elapsed := 0.0
		for {
			if duration > 0 && elapsed >= duration {
				return
			}
			<-ticker.C
			c.Step()
			elapsed += c.Tick
		}
	}()
	return done
}
