// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native selects the synchronization primitive behind every mutex
// handle when the program is built.
//
// Exactly one backend file is compiled into a given build. Each one defines
// the same three identifiers:
//   - Mutex: the primitive, with Init, Fini, Lock and Unlock methods
//   - Name: a short backend name for diagnostics
//   - StaticInit: true when the zero value of Mutex is ready to lock
//
// Backends and the build constraints that select them:
//
//	disabled     nomutex
//	critsec      mutex_critsec, or windows without mutex_posix/mutex_sema
//	sema         mutex_sema, or plan9 without mutex_posix
//	posix        mutex_posix, or any unix target
//	unsupported  everything else (js, wasip1): the build fails
//
// The disabled backend compiles locking away entirely and is meant for
// programs that never touch a handle from more than one goroutine.
//
// Backends without a static initializer (critsec, sema) need Init before
// the first Lock. The mutex package does that for every declared handle
// from its one-time setup path.
//
// There is no runtime dispatch: callers hold a concrete Mutex value and
// the compiler sees the concrete methods.
package native
