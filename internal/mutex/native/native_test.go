// Copyright 2026 The mutexcap Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !nomutex

package native

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestName verifies the selected backend names itself.
func TestName(t *testing.T) {
	switch Name {
	case "posix", "critsec", "sema":
	default:
		t.Errorf("Name = %q, want one of posix, critsec, sema", Name)
	}
}

// TestMutex_LockUnlock verifies a single goroutine can lock and unlock repeatedly.
func TestMutex_LockUnlock(t *testing.T) {
	var m Mutex
	m.Init()
	defer m.Fini()

	for i := 0; i < 1000; i++ {
		m.Lock()
		m.Unlock()
	}
}

// TestMutex_ExclusiveAccess verifies at most one goroutine is inside the critical section.
func TestMutex_ExclusiveAccess(t *testing.T) {
	const (
		numGoroutines = 16
		iterations    = 2000
	)

	var (
		m        Mutex
		inside   atomic.Int32
		maxSeen  atomic.Int32
		counter  int
		wg       sync.WaitGroup
		violated atomic.Bool
	)
	m.Init()
	defer m.Fini()

	for g := 0; g < numGoroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				m.Lock()
				n := inside.Add(1)
				if n > 1 {
					violated.Store(true)
				}
				if n > maxSeen.Load() {
					maxSeen.Store(n)
				}
				counter++
				inside.Add(-1)
				m.Unlock()
			}
		}()
	}
	wg.Wait()

	if violated.Load() {
		t.Errorf("critical section entered concurrently (max %d goroutines inside)", maxSeen.Load())
	}
	if counter != numGoroutines*iterations {
		t.Errorf("counter = %d, want %d", counter, numGoroutines*iterations)
	}
}

// TestMutex_LockBlocks verifies Lock waits for the holder to Unlock.
func TestMutex_LockBlocks(t *testing.T) {
	var m Mutex
	m.Init()
	defer m.Fini()

	m.Lock()

	acquired := make(chan struct{})
	released := make(chan struct{})
	go func() {
		defer close(released)
		m.Lock()
		close(acquired)
		m.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second Lock returned while the mutex was held")
	case <-time.After(50 * time.Millisecond):
	}

	m.Unlock()

	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		t.Fatal("second Lock did not return after Unlock")
	}

	// The deferred Fini must not run while the goroutine still holds m.
	<-released
}

// TestMutex_InitFiniInit verifies a finalized mutex can be brought back with Init.
func TestMutex_InitFiniInit(t *testing.T) {
	var m Mutex

	m.Init()
	m.Lock()
	m.Unlock()
	m.Fini()

	m.Init()
	m.Lock()
	m.Unlock()
	m.Fini()
}

// TestMutex_ManyHandles verifies independent handles do not exclude each other.
func TestMutex_ManyHandles(t *testing.T) {
	var a, b Mutex
	a.Init()
	b.Init()
	defer a.Fini()
	defer b.Fini()

	a.Lock()
	done := make(chan struct{})
	go func() {
		b.Lock()
		b.Unlock()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Lock on an unrelated handle blocked")
	}
	a.Unlock()
}

// BenchmarkMutex_Uncontended measures a Lock/Unlock pair without contention.
func BenchmarkMutex_Uncontended(b *testing.B) {
	var m Mutex
	m.Init()
	defer m.Fini()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Lock()
		m.Unlock()
	}
}

// BenchmarkMutex_Contended measures Lock/Unlock pairs under parallel load.
func BenchmarkMutex_Contended(b *testing.B) {
	var m Mutex
	m.Init()
	defer m.Fini()

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Lock()
			m.Unlock()
		}
	})
}
