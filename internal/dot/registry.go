package dot

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Entry is one registered dot-product implementation.
type Entry struct {
	// Name is a human-readable identifier (e.g. "generic", "vecmath").
	Name string

	// SIMDLevel is the instruction set the implementation requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; the highest wins.
	//   - generic: 0
	//   - unrolled: 5
	//   - vecmath (SSE2/AVX2/NEON): 20
	Priority int

	// Product returns sum(a[i] * b[i]) over min(len(a), len(b)) elements.
	Product func(a, b []float64) float64
}

// Registry holds the dot-product implementations known to this process.
//
// Implementations register from init() functions. Lookup selects the
// highest-priority entry compatible with the given CPU features.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool
}

// Global is the registry used by Product.
var Global = &Registry{}

// Register adds an implementation. All registrations should complete
// before the first Lookup.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry whose SIMD level is supported
// by features, or nil when nothing compatible is registered.
func (r *Registry) Lookup(features cpu.Features) *Entry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Product != nil && cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by descending priority.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// Entries returns a copy of all registered entries.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
