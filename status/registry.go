// Package status is the shared counter board of the interaction core.
//
// Components resolve their metric pointers once at construction and write to the
// atomics directly afterwards; readers (HUD, tests) take a sorted Snapshot.
package status

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// Metric is one formatted registry entry
type Metric struct {
	Key   string
	Value string
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot returns every metric formatted and sorted by key
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())

	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out = append(out, Metric{Key: key, Value: strconv.FormatBool(ptr.Load())})
	})
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out = append(out, Metric{Key: key, Value: strconv.FormatInt(ptr.Load(), 10)})
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		out = append(out, Metric{Key: key, Value: strconv.FormatFloat(ptr.Get(), 'f', 2, 64)})
	})

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Lookup returns the formatted value for key
func (r *Registry) Lookup(key string) (string, bool) {
	switch {
	case r.Bools.Has(key):
		return strconv.FormatBool(r.Bools.Get(key).Load()), true
	case r.Ints.Has(key):
		return strconv.FormatInt(r.Ints.Get(key).Load(), 10), true
	case r.Floats.Has(key):
		return strconv.FormatFloat(r.Floats.Get(key).Get(), 'f', 2, 64), true
	}
	return "", false
}
