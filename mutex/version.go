package mutex

import "github.com/kolkov/mutexcap/internal/mutex/native"

// Version information for the mutex layer.
const (
	// Version is the current version of the mutex layer.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the mutex layer in the running binary.
type Info struct {
	// Version is the layer version string.
	Version string

	// Backend is the primitive selected at build time.
	Backend string

	// StaticInit reports whether handles are usable before Initialize.
	StaticInit bool

	// Initialized reports whether Initialize has run and Finalize has not.
	Initialized bool

	// Handles is the number of declared handles.
	Handles int

	// Setups counts how many times the one-time setup has run.
	Setups uint64
}

// GetInfo returns a snapshot of the layer state.
//
// Example:
//
//	info := mutex.GetInfo()
//	fmt.Printf("mutex %s (%s backend, %d handles)\n", info.Version, info.Backend, info.Handles)
func GetInfo() Info {
	return Info{
		Version:     Version,
		Backend:     native.Name,
		StaticInit:  native.StaticInit,
		Initialized: guard.Done(),
		Handles:     handles.Len(),
		Setups:      setups.Load(),
	}
}
