// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex && !mutex_critsec && !mutex_sema && (mutex_posix || unix)

package native

import "sync"

const (
	// Name identifies the POSIX-style backend.
	Name = "posix"

	// StaticInit is true: the zero Mutex is unlocked and ready to use.
	StaticInit = true
)

// Mutex is a thin wrapper over sync.Mutex.
//
// The zero value plays the role of PTHREAD_MUTEX_INITIALIZER, so handles
// declared as package-level variables are usable before any setup runs.
type Mutex struct {
	mu sync.Mutex
}

// Init resets m to the unlocked zero state.
// It must not be called while m is locked.
func (m *Mutex) Init() {
	m.mu = sync.Mutex{}
}

// Fini is a no-op: sync.Mutex owns no resources.
func (m *Mutex) Fini() {}

// Lock blocks until m is held by the caller.
func (m *Mutex) Lock() {
	m.mu.Lock()
}

// Unlock releases m. Unlocking an unlocked Mutex is a fatal runtime error.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}
