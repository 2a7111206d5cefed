// Package registry provides the implementation registry for add kernels.
//
// The registry lets several variants of the same kernel (the reference
// loop, the unrolled loop, and any SIMD variant a later build adds)
// coexist. The best variant for the current CPU is selected at runtime.
//
// Variant packages register themselves via init() functions, and the kernel
// package uses the registry to select an implementation based on the CPU
// features reported by github.com/cwbudde/algo-vecmath/cpu.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry represents a registered add-kernel variant.
//
// Every entry must compute exactly the same result as the reference loop.
// Variants differ only in speed.
type OpEntry struct {
	// Name is a human-readable identifier for this variant (e.g., "generic", "unroll8").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this variant.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible variants exist.
	// Higher priority variants are preferred. Current priorities:
	//   - reference loop (SIMDNone): 0
	//   - unrolled scalar (SIMDNone): 10
	Priority int

	// Reference marks the strict-index-order loop. When ForceGeneric is set,
	// only reference entries are eligible.
	Reference bool

	// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
	AddBlock func(dst, a, b []int32)
}

// OpRegistry manages the registration and lookup of add-kernel variants.
//
// Variants register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority variant compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the kernel package.
var Global = &OpRegistry{}

// Register adds a variant to the registry.
//
// This function is typically called from init() functions in variant
// packages. It is safe to call concurrently, but all registrations should
// complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. When
// features.ForceGeneric is set, only entries marked Reference qualify.
// Returns nil if nothing qualifies, which should never happen once the
// generic package is linked in.
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		// Sort entries by priority (descending) for efficient lookup
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if features.ForceGeneric && !entry.Reference {
			continue
		}
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, 2-3 entries)
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

// ListEntries returns a copy of all registered entries, sorted by priority
// once Lookup has run.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
