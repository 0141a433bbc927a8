// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex && (mutex_critsec || (windows && !mutex_posix && !mutex_sema))

package native

import (
	"runtime"
	"sync/atomic"
)

const (
	// Name identifies the critical-section backend.
	Name = "critsec"

	// StaticInit is false: every Mutex needs Init before its first Lock.
	StaticInit = false
)

// DefaultSpinCount is the number of acquire attempts a contended Lock makes
// before it parks on the wait event. It is forced to zero on machines with
// a single CPU, where spinning can never observe a release.
var DefaultSpinCount int32 = 256

// Mutex is a critical section: an owner-plus-waiters counter with a short
// spin phase and a wait event that is allocated by Init.
//
// count holds 1 for the owner plus one per goroutine waiting for the event.
// Unlock hands the section to exactly one waiter by posting one token to
// the event; the buffer of one is enough because a second Unlock needs the
// token to have been consumed first.
type Mutex struct {
	count atomic.Int32
	spin  int32
	event chan struct{}
}

// Init prepares m for use. It is the InitializeCriticalSection step and
// must run before the first Lock.
func (m *Mutex) Init() {
	m.count.Store(0)
	m.spin = DefaultSpinCount
	if runtime.NumCPU() == 1 {
		m.spin = 0
	}
	m.event = make(chan struct{}, 1)
}

// Fini drops the wait event. m must be unlocked and must not be used again
// until the next Init.
func (m *Mutex) Fini() {
	m.event = nil
}

// Lock enters the critical section, spinning briefly before it waits.
func (m *Mutex) Lock() {
	if m.event == nil {
		panic("mutex: lock of uninitialized critical section")
	}
	for i := int32(0); i < m.spin; i++ {
		if m.count.Load() == 0 && m.count.CompareAndSwap(0, 1) {
			return
		}
	}
	if m.count.Add(1) > 1 {
		<-m.event
	}
}

// Unlock leaves the critical section and wakes one waiter, if any.
func (m *Mutex) Unlock() {
	if m.event == nil {
		panic("mutex: unlock of uninitialized critical section")
	}
	switch n := m.count.Add(-1); {
	case n > 0:
		m.event <- struct{}{}
	case n < 0:
		panic("mutex: unlock of unlocked critical section")
	}
}
