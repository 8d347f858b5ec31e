package state

import (
	"sync"
	"time"
)

// Handle cancels a periodic task. Stop is idempotent.
type Handle interface {
	Stop()
}

// Scheduler runs fn every d until the returned handle is stopped.
type Scheduler interface {
	Every(d time.Duration, fn func()) Handle
}

// TickerScheduler runs tasks on a time.Ticker in their own goroutine. Wrap
// Dispatch to move the calls onto another goroutine, such as the UI thread.
type TickerScheduler struct {
	Dispatch func(func())
}

func (s TickerScheduler) Every(d time.Duration, fn func()) Handle {
	h := &tickerHandle{ticker: time.NewTicker(d), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				if s.Dispatch != nil {
					s.Dispatch(fn)
				} else {
					fn()
				}
			}
		}
	}()
	return h
}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
