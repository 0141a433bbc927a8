// Package registry keeps the fixed set of named mutex handles a program
// declares.
//
// Handles are declared by name, usually from package-level variable
// initializers, and live for the rest of the process. Declaring a name a
// second time returns the handle created the first time.
//
// The registry also carries the lifecycle state of the whole set:
//
//	Activate(init)    applies init to every declared handle and remembers it,
//	                  so handles declared later are initialized on creation
//	Deactivate(fini)  applies fini to every handle and forgets init
//
// Both run under the registry lock, so a declaration racing with
// activation either sees the set before activation (and is initialized by
// Activate) or after it (and is initialized on creation), never neither.
//
// Iteration order is declaration order.
package registry
