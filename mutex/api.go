package mutex

import (
	"sync"
	"sync/atomic"

	"github.com/kolkov/mutexcap/internal/mutex/native"
	"github.com/kolkov/mutexcap/internal/mutex/once"
	"github.com/kolkov/mutexcap/internal/mutex/registry"
)

// Process-wide layer state.
var (
	// guard is the initialized flag. Initialize and Finalize flip it.
	guard once.Guard

	// handles holds every declared Mutex in declaration order.
	handles registry.Registry[*Mutex]

	// setups counts completed setup runs, for GetInfo.
	setups atomic.Uint64
)

// Mutex is a mutual exclusion lock handle.
//
// Handles returned by [Declare] are initialized by [Initialize]. A Mutex
// declared as a plain value (for example a struct field) must be brought
// up with [Mutex.Init] before use on backends without a static
// initializer; calling Init is harmless on the others.
//
// A Mutex must not be copied after first use.
type Mutex struct {
	name string
	n    native.Mutex
}

var _ sync.Locker = (*Mutex)(nil)

// Declare returns the handle registered under name, creating it on first
// use. Declaring the same name again returns the same handle.
//
// Declare is meant for package-level variable initializers:
//
//	var fontMapLock = mutex.Declare("font_map")
//
// A handle declared while the layer is initialized is initialized before
// Declare returns.
func Declare(name string) *Mutex {
	m, _ := handles.GetOrCreate(name, func(name string) *Mutex {
		return &Mutex{name: name}
	})
	return m
}

// Lookup returns the handle declared under name.
func Lookup(name string) (*Mutex, bool) {
	return handles.Lookup(name)
}

// Handles returns the declared handle names in declaration order.
func Handles() []string {
	var names []string
	handles.Range(func(name string, _ *Mutex) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Name returns the name m was declared under, or "" for an undeclared Mutex.
func (m *Mutex) Name() string {
	return m.name
}

// Lock blocks until the caller holds m.
func (m *Mutex) Lock() {
	m.n.Lock()
}

// Unlock releases m. The caller must hold m.
func (m *Mutex) Unlock() {
	m.n.Unlock()
}

// Init brings m into the unlocked state. Declared handles do not need it:
// [Initialize] takes care of them.
func (m *Mutex) Init() {
	m.n.Init()
}

// Fini releases the resources behind m. m must be unlocked and must not be
// used again until the next Init.
func (m *Mutex) Fini() {
	m.n.Fini()
}

// Initialize prepares every declared handle for use.
//
// Only the first call after process start, or after [Finalize], does any
// work; every other call returns once that work is complete. Safe for
// concurrent calls.
func Initialize() {
	guard.Do(setup)
}

// Finalize tears down what [Initialize] set up. Declared handles must be
// unlocked and must not be used until the next Initialize.
//
// Only the first call after an Initialize does any work.
func Finalize() {
	guard.Undo(teardown)
}

// Initialized reports whether the layer is between Initialize and Finalize.
func Initialized() bool {
	return guard.Done()
}

// Backend returns the name of the primitive selected at build time:
// "posix", "critsec", "sema" or "disabled".
func Backend() string {
	return native.Name
}

func setup() {
	var hook func(*Mutex)
	if !native.StaticInit {
		hook = (*Mutex).Init
	}
	handles.Activate(hook)
	setups.Add(1)
}

func teardown() {
	var hook func(*Mutex)
	if !native.StaticInit {
		hook = (*Mutex).Fini
	}
	handles.Deactivate(hook)
}
