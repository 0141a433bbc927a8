// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// Primitive is the capability set every backend must provide.
//
// Lock blocks until the caller owns the primitive. Unlock releases it.
// Init brings a primitive into the unlocked state; Fini releases whatever
// the backend allocated in Init. None of them report errors: misuse is
// undefined and, where a backend can detect it, fatal.
type Primitive interface {
	Init()
	Fini()
	Lock()
	Unlock()
}

// The selected backend must implement the whole capability set, and must
// name itself. A backend file missing any of these fails to compile.
var (
	_ Primitive = (*Mutex)(nil)
	_ string    = Name
	_ bool      = StaticInit
)
