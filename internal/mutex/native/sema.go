// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex && !mutex_critsec && (mutex_sema || (plan9 && !mutex_posix))

package native

import (
	"context"

	"golang.org/x/sync/semaphore"
)

const (
	// Name identifies the semaphore backend.
	Name = "sema"

	// StaticInit is false: the semaphore is created by Init.
	StaticInit = false
)

// Mutex is a binary semaphore. Lock waits without a deadline.
type Mutex struct {
	sem *semaphore.Weighted
}

// Init creates the semaphore with one unit available.
func (m *Mutex) Init() {
	m.sem = semaphore.NewWeighted(1)
}

// Fini drops the semaphore, leaving the zero handle. Finalizing a Mutex
// that was never initialized, or was already finalized, does nothing.
func (m *Mutex) Fini() {
	m.sem = nil
}

// Lock waits indefinitely for the semaphore unit.
func (m *Mutex) Lock() {
	if m.sem == nil {
		panic("mutex: lock of uninitialized semaphore")
	}
	// The background context never ends, so Acquire only returns once the
	// unit is held.
	if err := m.sem.Acquire(context.Background(), 1); err != nil {
		panic("mutex: semaphore wait failed: " + err.Error())
	}
}

// Unlock returns the semaphore unit. Releasing a unit that is not held
// panics inside the semaphore.
func (m *Mutex) Unlock() {
	if m.sem == nil {
		panic("mutex: unlock of uninitialized semaphore")
	}
	m.sem.Release(1)
}
