// Package dot provides the inner-product primitive used by the
// connectivity kernels.
//
// Several implementations (scalar, unrolled, SIMD through algo-vecmath)
// register themselves in [Global]. The best one for the running CPU is
// chosen on the first call to [Product] and kept for the lifetime of the
// process. Implementations are not bit-identical; they agree within
// 1e-7 absolute / 1e-5 relative tolerance.
package dot

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	selected   *Entry
	selectOnce sync.Once
)

func selectImplementation() {
	entry := Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("dot: no implementation registered")
	}
	selected = entry
}

// Product returns the dot product of a and b: sum(a[i] * b[i]).
// Only the first min(len(a), len(b)) elements are used; empty input yields 0.
func Product(a, b []float64) float64 {
	selectOnce.Do(selectImplementation)
	return selected.Product(a, b)
}

// Implementation returns the name of the implementation used by Product.
func Implementation() string {
	selectOnce.Do(selectImplementation)
	return selected.Name
}
