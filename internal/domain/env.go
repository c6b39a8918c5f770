package domain

import (
	"fmt"
	"sync"
)

// Env is the fixture store of a single case. The runner creates a fresh Env
// for every case, so nothing set by one case is visible to the next.
// An action abandoned after a timeout may still hold it while the teardown
// hooks run, so access is locked.
type Env struct {
	mu     sync.Mutex
	values map[string]any
}

// NewEnv returns an empty Env
func NewEnv() *Env {
	return &Env{values: make(map[string]any)}
}

// Set stores a fixture value under key, replacing any previous value.
func (e *Env) Set(key string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (e *Env) Get(key string) (any, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.values[key]
	return v, ok
}

// Value returns the fixture stored under key as a T. It panics when the key is
// missing or holds another type; inside a case that surfaces as an errored result.
func Value[T any](e *Env, key string) T {
	raw, ok := e.Get(key)
	if !ok {
		panic(fmt.Sprintf("fixture %q not set", key))
	}
	v, ok := raw.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("fixture %q holds %T, want %T", key, raw, zero))
	}
	return v
}
