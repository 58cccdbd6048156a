package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/dev-arcade/core"
)

// LoopScheduler drives real timers and delivers their callbacks through a Loop
// Callbacks cancelled after being queued are dropped on the loop goroutine
type LoopScheduler struct {
	loop *Loop

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]Cancel
}

// NewLoopScheduler creates a scheduler bound to loop
func NewLoopScheduler(loop *Loop) *LoopScheduler {
	return &LoopScheduler{
		loop:    loop,
		pending: make(map[uint64]Cancel),
	}
}

// After schedules fn once after d
func (s *LoopScheduler) After(d time.Duration, fn func()) Cancel {
	var (
		cancelled atomic.Bool
		timer     *time.Timer
		id        uint64
	)

	cancel := func() {
		if cancelled.CompareAndSwap(false, true) {
			if timer != nil {
				timer.Stop()
			}
			s.untrack(id)
		}
	}
	id = s.add(cancel)

	timer = time.AfterFunc(d, func() {
		s.loop.Post(func() {
			if !cancelled.CompareAndSwap(false, true) {
				return
			}
			s.untrack(id)
			fn()
		})
	})
	return cancel
}

// Every schedules fn every d until cancelled
func (s *LoopScheduler) Every(d time.Duration, fn func()) Cancel {
	if d <= 0 {
		return noopCancel
	}

	var (
		cancelled atomic.Bool
		stopOnce  sync.Once
	)
	stop := make(chan struct{})

	cancel := func() {
		cancelled.Store(true)
		stopOnce.Do(func() { close(stop) })
	}
	id := s.add(cancel)

	core.Go(func() {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-s.loop.Done():
				return
			case <-ticker.C:
				s.loop.Post(func() {
					if cancelled.Load() {
						return
					}
					fn()
				})
			}
		}
	})

	return func() {
		cancel()
		s.untrack(id)
	}
}

// Pending returns the number of live timers
func (s *LoopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// StopAll cancels every live timer, used on teardown
func (s *LoopScheduler) StopAll() {
	s.mu.Lock()
	cancels := make([]Cancel, 0, len(s.pending))
	for _, c := range s.pending {
		cancels = append(cancels, c)
	}
	s.pending = make(map[uint64]Cancel)
	s.mu.Unlock()

	for _, c := range cancels {
		c()
	}
}

func (s *LoopScheduler) add(cancel Cancel) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.pending[s.nextID] = cancel
	return s.nextID
}

func (s *LoopScheduler) untrack(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}
