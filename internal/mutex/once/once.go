// Package once provides a resettable one-time setup guard.
//
// Guard is the process-wide "initialized" flag of the mutex layer. Unlike
// sync.Once it can be undone, so a setup/teardown pair can run again after
// the layer has been finalized:
//
//	var g once.Guard
//	g.Do(setup)    // runs setup
//	g.Do(setup)    // no-op
//	g.Undo(teardown)
//	g.Do(setup)    // runs setup again
//
// The flag is read with an atomic load on the fast path. The slow path is
// serialized by a sync.Mutex, whose zero value is valid on every target, so
// the guard needs no setup of its own.
package once

import (
	"sync"
	"sync/atomic"
)

// Guard runs a setup function once until it is undone.
//
// The zero value is ready to use. A Guard must not be copied after first use.
type Guard struct {
	done atomic.Bool
	m    sync.Mutex
}

// Do calls f if the guard is not done, then marks it done.
//
// Concurrent callers block until the running f returns, so when Do returns
// the setup is complete no matter which caller ran it. If f panics the
// guard stays not done and a later Do retries.
//
// Returns:
//   - true if this call ran f
func (g *Guard) Do(f func()) bool {
	if g.done.Load() {
		return false
	}
	return g.doSlow(f)
}

func (g *Guard) doSlow(f func()) bool {
	g.m.Lock()
	defer g.m.Unlock()
	if g.done.Load() {
		return false
	}
	f()
	g.done.Store(true)
	return true
}

// Undo calls f if the guard is done, then marks it not done.
//
// Only the first Undo after a Do does anything; further calls return false.
// f must not call Do or Undo on the same guard.
//
// Returns:
//   - true if this call ran f
func (g *Guard) Undo(f func()) bool {
	if !g.done.Load() {
		return false
	}
	g.m.Lock()
	defer g.m.Unlock()
	if !g.done.Load() {
		return false
	}
	f()
	g.done.Store(false)
	return true
}

// Done reports whether setup has completed and not been undone.
func (g *Guard) Done() bool {
	return g.done.Load()
}
