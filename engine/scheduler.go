package engine

import "time"

// Cancel stops a scheduled callback
// Safe to call more than once; after it returns the callback never runs again
type Cancel func()

// Scheduler runs callbacks after a delay or periodically
// Implementations deliver every callback on the goroutine that owns game state
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
	Every(d time.Duration, fn func()) Cancel
}

func noopCancel() {}
