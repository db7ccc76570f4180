package input

import (
	"log"
	"sync"
)

// Handle is a stable identifier for a registered Controllable. Handles are
// never reused within a registry's lifetime.
type Handle uint64

// Registry is an ordered arena of controllables. Each entry is guarded by
// its own mutex so that external code (a render callback, diagnostic
// tooling) can reach a controllable by handle while the frame loop is
// between dispatches. The frame loop broadcasts to entries in registration
// order; an entry whose lock is held elsewhere is skipped for that pass,
// never waited on.
type Registry struct {
	mu      sync.Mutex
	next    Handle
	entries []*entry
}

// entry pairs a controllable with its handle and lock.
type entry struct {
	handle Handle
	mu     sync.Mutex
	ctrl   Controllable
}

// NewRegistry creates an empty controllable registry.
//
// Returns:
//   - *Registry: the newly created registry
func NewRegistry() *Registry {
	return &Registry{next: 1}
}

// Register appends a controllable to the registry and returns its handle.
// Safe to call while a broadcast pass is in flight; the new entry becomes
// visible to the following pass.
//
// Parameters:
//   - ctrl: the controllable to register
//
// Returns:
//   - Handle: stable handle identifying the registration
func (r *Registry) Register(ctrl Controllable) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := r.next
	r.next++
	r.entries = append(r.entries, &entry{handle: h, ctrl: ctrl})
	return h
}

// Remove detaches the controllable identified by handle.
//
// Parameters:
//   - handle: the handle returned by Register
//
// Returns:
//   - bool: true if an entry was removed, false if the handle is unknown
func (r *Registry) Remove(handle Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.handle == handle {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered controllables.
//
// Returns:
//   - int: current registration count
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// With grants exclusive access to the controllable identified by handle,
// blocking until its lock is available. Intended for external code reading
// derived state (e.g., a camera's matrices) between frames.
//
// Parameters:
//   - handle: the handle returned by Register
//   - fn: function invoked with the controllable while its lock is held
//
// Returns:
//   - bool: true if the handle was found and fn invoked
func (r *Registry) With(handle Handle, fn func(Controllable)) bool {
	e := r.lookup(handle)
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.ctrl)
	return true
}

// Broadcast invokes fn once per registered controllable, in registration
// order. Each entry's lock is acquired for the duration of its call only;
// an entry whose lock cannot be acquired is skipped for this pass and
// logged, keeping one busy controllable from stalling the frame.
//
// Parameters:
//   - fn: function invoked with each controllable
func (r *Registry) Broadcast(fn func(Controllable)) {
	for _, e := range r.snapshot() {
		if !e.mu.TryLock() {
			log.Printf("[input] controllable %d busy, skipping dispatch", e.handle)
			continue
		}
		fn(e.ctrl)
		e.mu.Unlock()
	}
}

// lookup finds the entry for a handle, or nil.
func (r *Registry) lookup(handle Handle) *entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.handle == handle {
			return e
		}
	}
	return nil
}

// snapshot copies the entry list so a broadcast pass iterates a fixed
// registration order even if Register or Remove runs mid-pass.
func (r *Registry) snapshot() []*entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]*entry, len(r.entries))
	copy(cp, r.entries)
	return cp
}
