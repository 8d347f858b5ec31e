package state

import "sync/atomic"

// Clock is a monotonic counter. It hands out canvas op sequence numbers and
// to-do ids, so a value is never reused even after items are removed.
type Clock struct {
	counter uint64
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}
