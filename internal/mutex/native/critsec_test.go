// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex && (mutex_critsec || (windows && !mutex_posix && !mutex_sema))

package native

import (
	"strings"
	"testing"
)

// expectPanic runs fn and reports an error unless it panics with want in the message.
func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		msg, _ := r.(string)
		if !strings.Contains(msg, want) {
			t.Fatalf("panic = %v, want message containing %q", r, want)
		}
	}()
	fn()
}

// TestCritsec_NoStaticInit verifies the backend requires per-handle Init.
func TestCritsec_NoStaticInit(t *testing.T) {
	if StaticInit {
		t.Fatal("critsec backend must not report StaticInit")
	}
}

// TestCritsec_LockUninitialized verifies Lock before Init is fatal.
func TestCritsec_LockUninitialized(t *testing.T) {
	var m Mutex
	expectPanic(t, "uninitialized", m.Lock)
}

// TestCritsec_LockAfterFini verifies Lock after Fini is fatal.
func TestCritsec_LockAfterFini(t *testing.T) {
	var m Mutex
	m.Init()
	m.Fini()
	expectPanic(t, "uninitialized", m.Lock)
}

// TestCritsec_UnlockUnlocked verifies the counter underflow is detected.
func TestCritsec_UnlockUnlocked(t *testing.T) {
	var m Mutex
	m.Init()
	expectPanic(t, "unlock of unlocked", m.Unlock)
}

// TestCritsec_InitResetsCounter verifies Init clears any previous owner state.
func TestCritsec_InitResetsCounter(t *testing.T) {
	var m Mutex
	m.Init()
	m.Lock()
	m.Init()

	if got := m.count.Load(); got != 0 {
		t.Errorf("count after Init = %d, want 0", got)
	}
	m.Lock()
	m.Unlock()
}

// TestCritsec_NoSpin verifies a zero spin count still locks correctly.
func TestCritsec_NoSpin(t *testing.T) {
	old := DefaultSpinCount
	DefaultSpinCount = 0
	defer func() { DefaultSpinCount = old }()

	var m Mutex
	m.Init()
	if m.spin != 0 {
		t.Fatalf("spin = %d, want 0", m.spin)
	}

	done := make(chan struct{})
	m.Lock()
	go func() {
		m.Lock()
		m.Unlock()
		close(done)
	}()
	m.Unlock()
	<-done
}
