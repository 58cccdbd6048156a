package status

import (
	"sync"
	"testing"
)

func TestMetricMapReturnsStablePointers(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ints.Get("session.hits")
	b := reg.Ints.Get("session.hits")
	if a != b {
		t.Fatal("Get must return the cached pointer")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Expected shared counter 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[int]()
	var wg sync.WaitGroup
	ptrs := make([]*int, 32)
	for i := range ptrs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ptrs[i] = m.Get("shared")
		}()
	}
	wg.Wait()

	for _, p := range ptrs {
		if p != ptrs[0] {
			t.Fatal("Concurrent Get produced distinct pointers")
		}
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestRegistryLine(t *testing.T) {
	reg := NewRegistry()
	reg.Strings.Get("session.phase").Store("playing")
	reg.Ints.Get("session.hits").Store(12)
	reg.Floats.Get("session.speed").Set(0.75)
	reg.Bools.Get("audio.muted").Store(true)

	got := reg.Line("session.phase", "session.hits", "session.speed", "audio.muted", "missing.key")
	want := "phase=playing hits=12 speed=0.75 muted=true"
	if got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
	if reg.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", reg.TotalCount())
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should load empty")
	}
	s.Store("this status value is far longer than the limit")
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Expected %d bytes, got %d", MaxStringLen, len(s.Load()))
	}
}

func TestAtomicFloatMax(t *testing.T) {
	var f AtomicFloat
	f.Set(2)
	if got := f.Max(1); got != 2 {
		t.Errorf("Max with smaller value returned %v", got)
	}
	if got := f.Max(5); got != 5 || f.Get() != 5 {
		t.Errorf("Max with larger value returned %v, stored %v", got, f.Get())
	}
}
