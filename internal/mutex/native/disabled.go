// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build nomutex

package native

const (
	// Name identifies the disabled backend.
	Name = "disabled"

	// StaticInit is true: there is nothing to set up.
	StaticInit = true
)

// Mutex is an inert placeholder. Every method returns immediately.
type Mutex struct{}

// Init does nothing.
func (m *Mutex) Init() {}

// Fini does nothing.
func (m *Mutex) Fini() {}

// Lock does nothing and never blocks.
func (m *Mutex) Lock() {}

// Unlock does nothing.
func (m *Mutex) Unlock() {}
