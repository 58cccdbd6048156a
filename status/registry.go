package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Handlers cache pointers at construction; event handling writes directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line renders the named metrics as "key=value" pairs for a status bar
// Unknown keys are skipped; lookup order is strings, ints, floats, bools
func (r *Registry) Line(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		short := key[strings.LastIndexByte(key, '.')+1:]
		switch {
		case r.Strings.Has(key):
			parts = append(parts, fmt.Sprintf("%s=%s", short, r.Strings.Get(key).Load()))
		case r.Ints.Has(key):
			parts = append(parts, fmt.Sprintf("%s=%d", short, r.Ints.Get(key).Load()))
		case r.Floats.Has(key):
			parts = append(parts, fmt.Sprintf("%s=%.2f", short, r.Floats.Get(key).Get()))
		case r.Bools.Has(key):
			parts = append(parts, fmt.Sprintf("%s=%t", short, r.Bools.Get(key).Load()))
		}
	}
	return strings.Join(parts, " ")
}
