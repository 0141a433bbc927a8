// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex && !mutex_critsec && (mutex_sema || (plan9 && !mutex_posix))

package native

import "testing"

// TestSema_NoStaticInit verifies the backend requires per-handle Init.
func TestSema_NoStaticInit(t *testing.T) {
	if StaticInit {
		t.Fatal("sema backend must not report StaticInit")
	}
}

// TestSema_LockUninitialized verifies Lock before Init is fatal.
func TestSema_LockUninitialized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Lock of uninitialized semaphore")
		}
	}()
	var m Mutex
	m.Lock()
}

// TestSema_FiniUninitialized verifies Fini on a never-initialized handle is a no-op.
func TestSema_FiniUninitialized(t *testing.T) {
	var m Mutex
	m.Fini()
	m.Fini()
	if m.sem != nil {
		t.Error("Fini left a semaphore behind")
	}
}

// TestSema_FiniClearsHandle verifies Fini zeroes the handle.
func TestSema_FiniClearsHandle(t *testing.T) {
	var m Mutex
	m.Init()
	if m.sem == nil {
		t.Fatal("Init did not create the semaphore")
	}
	m.Fini()
	if m.sem != nil {
		t.Error("Fini did not clear the semaphore")
	}
}

// TestSema_UnlockUnlocked verifies releasing an unheld unit panics.
func TestSema_UnlockUnlocked(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Unlock of unlocked semaphore")
		}
	}()
	var m Mutex
	m.Init()
	m.Unlock()
}
