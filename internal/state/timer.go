package state

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// TimerState is the phase of a Countdown.
type TimerState int

const (
	Idle TimerState = iota
	Running
	Paused
)

func (s TimerState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

const (
	DefaultPomodoro     = 1500
	DefaultTickInterval = time.Second
)

// Countdown is a fixed-length pomodoro counter. Remaining is decremented by
// one on each tick while Running. Every method is safe to call from any
// goroutine; callbacks run after the lock is released, on the goroutine that
// caused them (the tick goroutine for decrements, unless the scheduler
// dispatches elsewhere).
type Countdown struct {
	total     int
	remaining int
	state     TimerState
	completed bool
	interval  time.Duration
	sched     Scheduler
	handle    Handle
	gen       uint64
	mu        sync.Mutex

	// OnTick is called after each decrement and after Reset.
	OnTick func(remaining int)
	// OnComplete is called once when remaining reaches zero.
	OnComplete func()
	// OnStateChange is called after each transition.
	OnStateChange func(TimerState)
}

// NewCountdown creates an idle countdown of total units. Non-positive values
// fall back to the defaults. A nil scheduler uses a plain TickerScheduler.
func NewCountdown(total int, interval time.Duration, sched Scheduler) *Countdown {
	if total <= 0 {
		total = DefaultPomodoro
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if sched == nil {
		sched = TickerScheduler{}
	}
	return &Countdown{
		total:     total,
		remaining: total,
		interval:  interval,
		sched:     sched,
	}
}

// pending collects callbacks to run once c.mu is released.
type pending []func()

func (p pending) run() {
	for _, fn := range p {
		fn()
	}
}

// Start begins or resumes ticking. A finished countdown starts over.
func (c *Countdown) Start() {
	c.mu.Lock()
	var out pending
	c.start(&out)
	c.mu.Unlock()
	out.run()
}

// must hold c.mu
func (c *Countdown) start(out *pending) {
	if c.state == Running {
		return
	}
	if c.remaining == 0 {
		c.remaining = c.total
	}
	c.completed = false
	c.gen++
	gen := c.gen
	c.handle = c.sched.Every(c.interval, func() { c.tick(gen) })
	c.setState(Running, out)
}

// Pause stops ticking and keeps the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	var out pending
	c.pause(&out)
	c.mu.Unlock()
	out.run()
}

// must hold c.mu
func (c *Countdown) pause(out *pending) {
	if c.state != Running {
		return
	}
	c.stop()
	c.setState(Paused, out)
}

// Toggle pauses a running countdown and starts any other.
func (c *Countdown) Toggle() {
	c.mu.Lock()
	var out pending
	if c.state == Running {
		c.pause(&out)
	} else {
		c.start(&out)
	}
	c.mu.Unlock()
	out.run()
}

// Reset stops ticking and restores the full duration.
func (c *Countdown) Reset() {
	c.mu.Lock()
	var out pending
	c.stop()
	c.remaining = c.total
	c.completed = false
	if c.state != Idle {
		c.setState(Idle, &out)
	}
	if fn := c.OnTick; fn != nil {
		rem := c.remaining
		out = append(out, func() { fn(rem) })
	}
	c.mu.Unlock()
	out.run()
}

// Tick performs one decrement. It is what the scheduler calls while Running
// and does nothing in any other state.
func (c *Countdown) Tick() {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()
	c.tick(gen)
}

func (c *Countdown) tick(gen uint64) {
	c.mu.Lock()
	// a tick queued before Pause/Reset carries an old generation
	if c.state != Running || gen != c.gen || c.remaining == 0 {
		c.mu.Unlock()
		return
	}
	var out pending
	c.remaining--
	if fn := c.OnTick; fn != nil {
		rem := c.remaining
		out = append(out, func() { fn(rem) })
	}
	if c.remaining == 0 {
		c.stop()
		c.completed = true
		log.Printf("[TIMER] Pomodoro of %s complete", FormatClock(c.total))
		c.setState(Idle, &out)
		if fn := c.OnComplete; fn != nil {
			out = append(out, fn)
		}
	}
	c.mu.Unlock()
	out.run()
}

// must hold c.mu
func (c *Countdown) stop() {
	if c.handle != nil {
		c.handle.Stop()
		c.handle = nil
	}
	c.gen++
}

// must hold c.mu
func (c *Countdown) setState(s TimerState, out *pending) {
	debugf("[TIMER] %s -> %s at %s", c.state, s, FormatClock(c.remaining))
	c.state = s
	if fn := c.OnStateChange; fn != nil {
		*out = append(*out, func() { fn(s) })
	}
}

func (c *Countdown) State() TimerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) Running() bool { return c.State() == Running }

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Total() int { return c.total }

// Completed reports whether the last run counted all the way down.
func (c *Countdown) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// AtStart reports whether the countdown is idle with the full time left.
func (c *Countdown) AtStart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Idle && c.remaining == c.total
}

// Progress is the elapsed fraction, (total-remaining)/total.
func (c *Countdown) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.total-c.remaining) / float64(c.total)
}

// Label renders the remaining time as MM:SS.
func (c *Countdown) Label() string { return FormatClock(c.Remaining()) }

// FormatClock renders a count of seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
