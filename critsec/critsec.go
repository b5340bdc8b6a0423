// Package critsec provides the injected critical-section primitive the
// shadow table uses to serialize Host and Kernel access. The core never
// hard-codes a concrete implementation; callers wire one in at construction
// time the way a platform team would inject an interrupt-disable primitive
// on embedded targets.
package critsec

import "sync"

// Section runs f with the section held, guaranteeing mutual exclusion
// against any other Do call on the same Section.
type Section interface {
	Do(f func())
}

// Mutex is a Section backed by a sync.Mutex. It is the default, safe choice
// whenever Host and Kernel sides may run on different goroutines.
type Mutex struct {
	mu sync.Mutex
}

// Do runs f while holding the mutex.
func (m *Mutex) Do(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f()
}

// None is a no-op Section for callers who can prove, by construction, that
// only one goroutine ever touches the table (for example, during
// single-goroutine initialization before any worker is started).
type None struct{}

// Do runs f directly, without any synchronization.
func (None) Do(f func()) { f() }
