package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeScheduler struct {
	tasks []*fakeTask
}

type fakeTask struct {
	fn      func()
	stopped bool
}

func (t *fakeTask) Stop() { t.stopped = true }

func (s *fakeScheduler) Every(_ time.Duration, fn func()) Handle {
	t := &fakeTask{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// fire runs every live task n times, the way a ticker would.
func (s *fakeScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		for _, t := range s.tasks {
			if !t.stopped {
				t.fn()
			}
		}
	}
}

func (s *fakeScheduler) live() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

func TestCountdownRunsToCompletion(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCountdown(1500, time.Second, sched)
	completions := 0
	c.OnComplete = func() { completions++ }

	c.Start()
	require.True(t, c.Running())
	sched.fire(1500)

	require.Equal(t, 0, c.Remaining())
	require.Equal(t, 1.0, c.Progress())
	require.False(t, c.Running())
	require.Equal(t, Idle, c.State())
	require.True(t, c.Completed())
	require.Equal(t, 1, completions)
	require.Zero(t, sched.live())

	// extra ticks after completion change nothing
	sched.fire(5)
	require.Equal(t, 0, c.Remaining())
	require.Equal(t, 1, completions)
}

func TestCountdownPauseKeepsRemaining(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCountdown(10, time.Second, sched)

	c.Start()
	sched.fire(3)
	c.Pause()
	require.Equal(t, Paused, c.State())
	require.Equal(t, 7, c.Remaining())
	require.InDelta(t, 0.3, c.Progress(), 1e-9)

	sched.fire(4)
	require.Equal(t, 7, c.Remaining())

	c.Start()
	sched.fire(2)
	require.Equal(t, 5, c.Remaining())
	require.Equal(t, 1, sched.live())
}

func TestCountdownResetFromAnyState(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCountdown(60, time.Second, sched)

	c.Reset()
	require.Equal(t, 60, c.Remaining())
	require.Zero(t, c.Progress())

	c.Start()
	sched.fire(10)
	c.Reset()
	require.Equal(t, Idle, c.State())
	require.Equal(t, 60, c.Remaining())
	require.Zero(t, c.Progress())
	require.True(t, c.AtStart())

	c.Start()
	sched.fire(5)
	c.Pause()
	c.Reset()
	require.Equal(t, 60, c.Remaining())
	require.Zero(t, c.Progress())
	require.Zero(t, sched.live())
}

func TestCountdownPauseFromIdleIsNoop(t *testing.T) {
	c := NewCountdown(60, time.Second, &fakeScheduler{})
	var states []TimerState
	c.OnStateChange = func(s TimerState) { states = append(states, s) }

	c.Pause()
	require.Equal(t, Idle, c.State())
	require.Empty(t, states)
}

func TestCountdownStaleTickIgnored(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCountdown(10, time.Second, sched)
	c.Start()
	stale := sched.tasks[0].fn

	c.Pause()
	c.Start()
	// a tick that was queued before the pause must not count
	stale()
	require.Equal(t, 10, c.Remaining())

	sched.fire(1)
	require.Equal(t, 9, c.Remaining())
}

func TestCountdownToggle(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCountdown(10, time.Second, sched)

	c.Toggle()
	require.Equal(t, Running, c.State())
	c.Toggle()
	require.Equal(t, Paused, c.State())
	c.Toggle()
	require.Equal(t, Running, c.State())
}

func TestCountdownRestartAfterCompletion(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCountdown(2, time.Second, sched)
	c.Start()
	sched.fire(2)
	require.True(t, c.Completed())

	c.Start()
	require.False(t, c.Completed())
	require.Equal(t, 2, c.Remaining())
	require.True(t, c.Running())
}

func TestCountdownDefaults(t *testing.T) {
	c := NewCountdown(0, 0, nil)
	require.Equal(t, DefaultPomodoro, c.Total())
	require.Equal(t, "25:00", c.Label())
}

func TestFormatClock(t *testing.T) {
	require.Equal(t, "00:00", FormatClock(0))
	require.Equal(t, "00:59", FormatClock(59))
	require.Equal(t, "01:05", FormatClock(65))
	require.Equal(t, "00:00", FormatClock(-3))
}

func TestTickerSchedulerStops(t *testing.T) {
	ticks := make(chan struct{}, 16)
	h := TickerScheduler{}.Every(time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker never fired")
	}
	h.Stop()
	h.Stop()
}

func TestCountdownDefaultSchedulerConcurrentUse(t *testing.T) {
	c := NewCountdown(1000, time.Millisecond, nil)
	ticks := make(chan int, 1024)
	c.OnTick = func(rem int) {
		select {
		case ticks <- rem:
		default:
		}
	}

	deadline := time.Now().Add(100 * time.Millisecond)
	for time.Now().Before(deadline) {
		c.Start()
		time.Sleep(2 * time.Millisecond)
		_ = c.Remaining()
		_ = c.Progress()
		c.Pause()
	}
	c.Reset()

	require.Equal(t, Idle, c.State())
	require.Equal(t, 1000, c.Remaining())
}
