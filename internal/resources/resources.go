// Package resources holds the type-keyed registry of shared services: the
// active style sheet, the session history store, the current game record.
// It is read-mostly; nodes that cache layout derived from a resource must be
// marked for redraw after a resource is replaced.
package resources

import (
	"reflect"
	"sync"
)

// Resources is a shared, concurrency-safe registry keyed by concrete type.
// The zero value is not usable; construct with New.
type Resources struct {
	mu     sync.RWMutex
	values map[reflect.Type]interface{}
}

// New returns an empty registry.
func New() *Resources {
	return &Resources{values: make(map[reflect.Type]interface{})}
}

// Put stores v under its dynamic type, replacing any previous value.
func Put[T any](r *Resources, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[reflect.TypeOf((*T)(nil)).Elem()] = v
}

// Get returns the value stored for T. It panics when T was never registered;
// a missing resource is a wiring bug, not a runtime condition.
func Get[T any](r *Resources) T {
	v, ok := Lookup[T](r)
	if !ok {
		panic("resources: missing " + reflect.TypeOf((*T)(nil)).Elem().String())
	}
	return v
}

// Lookup returns the value stored for T and whether it was present.
func Lookup[T any](r *Resources) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
