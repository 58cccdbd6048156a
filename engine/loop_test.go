package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopRunsPostedInOrder(t *testing.T) {
	loop := NewLoop(16)
	var got []int

	for i := 0; i < 5; i++ {
		loop.Post(func() { got = append(got, i) })
	}
	loop.Post(loop.Stop)

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	for i, v := range got {
		if v != i {
			t.Fatalf("Out of order execution: %v", got)
		}
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 callbacks, got %d", len(got))
	}
}

func TestLoopRejectsPostAfterStop(t *testing.T) {
	loop := NewLoop(1)
	loop.Stop()
	if loop.Post(func() {}) {
		t.Error("Post after Stop should return false")
	}
}

func TestLoopStopsOnContext(t *testing.T) {
	loop := NewLoop(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := loop.Run(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestLoopSchedulerDeliversOnLoop(t *testing.T) {
	loop := NewLoop(16)
	sched := NewLoopScheduler(loop)

	var ticks atomic.Int32
	sched.After(5*time.Millisecond, func() {
		ticks.Add(1)
		loop.Stop()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if ticks.Load() != 1 {
		t.Errorf("Expected callback to run once, got %d", ticks.Load())
	}
	if sched.Pending() != 0 {
		t.Errorf("Fired one-shot still tracked")
	}
}

func TestLoopSchedulerCancelledNeverRuns(t *testing.T) {
	loop := NewLoop(16)
	sched := NewLoopScheduler(loop)

	var ran atomic.Bool
	cancelEvery := sched.Every(time.Millisecond, func() { ran.Store(true) })
	cancelEvery()
	cancelAfter := sched.After(time.Millisecond, func() { ran.Store(true) })
	cancelAfter()

	sched.After(30*time.Millisecond, loop.Stop)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = loop.Run(ctx)

	if ran.Load() {
		t.Error("Cancelled callback executed")
	}
}

func TestLoopSchedulerStopAll(t *testing.T) {
	loop := NewLoop(16)
	sched := NewLoopScheduler(loop)

	sched.Every(time.Hour, func() {})
	sched.After(time.Hour, func() {})
	if sched.Pending() != 2 {
		t.Fatalf("Expected 2 pending, got %d", sched.Pending())
	}

	sched.StopAll()
	if sched.Pending() != 0 {
		t.Errorf("StopAll left %d timers", sched.Pending())
	}
	loop.Stop()
}
