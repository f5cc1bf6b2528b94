// Package spinlock guards the memo partitions and the best solution of a parallel search.
// Their critical sections are a map access or a slice copy, too short to park a goroutine.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a lock held for a handful of instructions. Its zero value is unlocked.
type Mutex struct {
	state atomic.Int32 // 1 while held
}

// Lock acquires m, yielding to other goroutines while it is held elsewhere.
func (m *Mutex) Lock() {
	for !m.TryLock() {
		runtime.Gosched()
	}
}

// TryLock acquires m if it is free and reports whether it did.
func (m *Mutex) TryLock() bool { return m.state.CompareAndSwap(0, 1) }

// Unlock releases m. It must be held by the caller.
func (m *Mutex) Unlock() { m.state.Store(0) }
