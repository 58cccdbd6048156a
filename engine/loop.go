package engine

import (
	"context"
	"sync"
	"sync/atomic"
)

// Loop serializes state mutation onto a single goroutine
// Input events and timer callbacks are posted as closures and executed in FIFO order by Run
type Loop struct {
	queue    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewLoop creates a loop with the given queue capacity
func NewLoop(capacity int) *Loop {
	if capacity < 1 {
		capacity = 1
	}
	return &Loop{
		queue:    make(chan func(), capacity),
		stopChan: make(chan struct{}),
	}
}

// Post enqueues fn for execution on the loop goroutine
// Blocks while the queue is full; returns false once the loop is stopped
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// Run executes posted closures until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.stopChan:
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Stop terminates Run and rejects further posts
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}

// Done is closed when the loop is stopped
func (l *Loop) Done() <-chan struct{} {
	return l.stopChan
}
