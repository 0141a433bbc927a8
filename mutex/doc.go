// Package mutex provides named mutex handles backed by a lock primitive
// chosen when the program is built.
//
// A program declares the fixed set of locks it needs once, usually as
// package-level variables, brings the layer up with [Initialize], and uses
// each handle like a sync.Mutex:
//
//	var counterLock = mutex.Declare("counter_lock")
//
//	func main() {
//		mutex.Initialize()
//		defer mutex.Finalize()
//
//		counterLock.Lock()
//		counter++
//		counterLock.Unlock()
//	}
//
// # Backends
//
// The primitive behind every handle is selected by build constraints; one
// backend serves the whole binary:
//
//	posix     sync.Mutex; zero value ready (default on unix targets)
//	critsec   spin-then-wait critical section; needs Init (default on windows)
//	sema      binary semaphore, indefinite wait; needs Init (default on plan9)
//	disabled  every operation is a no-op (-tags nomutex)
//
// The tags mutex_posix, mutex_critsec and mutex_sema force a backend on any
// target. Targets with no known primitive (js, wasip1) fail to compile
// unless the nomutex tag is given. [Backend] reports the selection.
//
// # Initialization
//
// [Initialize] runs a one-time setup that initializes every declared
// handle whose backend has no static initializer. It may be called any
// number of times from any goroutine; callers that arrive while setup is
// running wait for it. [Finalize] is the matching teardown; after it,
// [Initialize] runs setup again. Handles declared after [Initialize] are
// initialized as they are declared.
//
// Mutexes embedded in other values, rather than declared by name, are
// brought up with [Mutex.Init] and torn down with [Mutex.Fini].
//
// # Misuse
//
// The layer has no error returns. Locking a handle before it is
// initialized or after it is finalized, unlocking a handle the caller
// does not hold, and copying a handle are undefined. Backends that can
// detect misuse panic with a message starting with "mutex:".
//
// # Generated declarations
//
// The mutexlist command turns a YAML list of names into a Go file of
// Declare calls:
//
//	//go:generate go run github.com/kolkov/mutexcap/cmd/mutexlist -i mutexes.yaml -o mutex_list.go
package mutex
