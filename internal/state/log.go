package state

import (
	"log"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug turns on per-mutation logging for all state containers.
func SetDebug(on bool) { debug.Store(on) }

func debugf(format string, args ...any) {
	if debug.Load() {
		log.Printf(format, args...)
	}
}
