package engine

import (
	"sync"
	"time"
)

// ManualScheduler is a fake clock and scheduler for deterministic tests
// Time only moves on Advance; due callbacks run on the caller's goroutine in due order
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	seq       uint64
	due       time.Time
	period    time.Duration
	fn        func()
	cancelled bool
}

// NewManualScheduler creates a manual scheduler starting at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the current fake time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// After schedules fn once, d after the current fake time
func (m *ManualScheduler) After(d time.Duration, fn func()) Cancel {
	return m.add(d, 0, fn)
}

// Every schedules fn periodically; non-positive periods are ignored
func (m *ManualScheduler) Every(d time.Duration, fn func()) Cancel {
	if d <= 0 {
		return noopCancel
	}
	return m.add(d, d, fn)
}

func (m *ManualScheduler) add(d, period time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		seq:    m.seq,
		due:    m.now.Add(d),
		period: period,
		fn:     fn,
	}
	m.timers = append(m.timers, t)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		t.cancelled = true
		m.remove(t)
	}
}

// Advance moves time forward by d, firing every callback that falls due on the way
// Callbacks may schedule or cancel timers; new timers due within the window also fire
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		next := m.earliest(target)
		if next == nil {
			break
		}

		m.now = next.due
		if next.period > 0 {
			next.due = next.due.Add(next.period)
		} else {
			m.remove(next)
		}

		fn := next.fn
		m.mu.Unlock()
		fn()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// Pending returns the number of live timers
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// earliest returns the live timer due first at or before limit, nil if none
func (m *ManualScheduler) earliest(limit time.Time) *manualTimer {
	var best *manualTimer
	for _, t := range m.timers {
		if t.cancelled || t.due.After(limit) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (m *ManualScheduler) remove(t *manualTimer) {
	for i, cur := range m.timers {
		if cur == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
