package registry

import "sync"

// Registry maps names to handles of type T.
//
// The zero value is an empty, inactive registry ready to use.
//
// Thread Safety: All methods are safe for concurrent calls. Callbacks run
// with the registry lock held and must not call back into the registry.
type Registry[T any] struct {
	mu sync.Mutex

	// byName indexes entries for GetOrCreate and Lookup.
	byName map[string]int

	// entries holds handles in declaration order.
	entries []entry[T]

	// active is set between Activate and Deactivate.
	active bool

	// hook is the Activate callback applied to late declarations.
	// nil when inactive or when activation needs no per-handle work.
	hook func(T)
}

type entry[T any] struct {
	name  string
	value T
}

// GetOrCreate returns the handle declared under name, calling create to
// make it on first use.
//
// When the registry is active, a newly created handle is passed to the
// Activate callback before it is returned.
//
// Returns:
//   - T: the handle for name (the same value for every call)
//   - bool: true if this call created it
func (r *Registry[T]) GetOrCreate(name string, create func(name string) T) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.byName[name]; ok {
		return r.entries[i].value, false
	}

	v := create(name)
	if r.active && r.hook != nil {
		r.hook(v)
	}

	if r.byName == nil {
		r.byName = make(map[string]int)
	}
	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, entry[T]{name: name, value: v})
	return v, true
}

// Lookup returns the handle declared under name, if any.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.byName[name]; ok {
		return r.entries[i].value, true
	}
	var zero T
	return zero, false
}

// Len returns the number of declared handles.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Range calls fn for each handle in declaration order until fn returns false.
//
// Range iterates over a snapshot, so fn may declare or look up handles.
func (r *Registry[T]) Range(fn func(name string, v T) bool) {
	r.mu.Lock()
	snapshot := make([]entry[T], len(r.entries))
	copy(snapshot, r.entries)
	r.mu.Unlock()

	for _, e := range snapshot {
		if !fn(e.name, e.value) {
			return
		}
	}
}

// Activate applies fn to every declared handle and keeps applying it to
// handles declared afterwards. A nil fn only marks the registry active.
//
// Returns false, doing nothing, if the registry is already active.
func (r *Registry[T]) Activate(fn func(T)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		return false
	}
	if fn != nil {
		for _, e := range r.entries {
			fn(e.value)
		}
	}
	r.active = true
	r.hook = fn
	return true
}

// Deactivate applies fn to every declared handle, in reverse declaration
// order, and stops initializing new declarations. A nil fn only marks
// the registry inactive.
//
// Returns false, doing nothing, if the registry is not active.
func (r *Registry[T]) Deactivate(fn func(T)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.active {
		return false
	}
	if fn != nil {
		for i := len(r.entries) - 1; i >= 0; i-- {
			fn(r.entries[i].value)
		}
	}
	r.active = false
	r.hook = nil
	return true
}

// Reset forgets every declared handle and leaves the registry inactive.
// No callbacks run. Used by tests to start from a clean state.
func (r *Registry[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName = nil
	r.entries = nil
	r.active = false
	r.hook = nil
}
