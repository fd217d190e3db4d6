//go:build !purego && (amd64 || arm64)

package dot

import (
	"runtime"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers algo-vecmath's SIMD dot product. The library picks its
// own kernel (SSE2/AVX2 or NEON); the entry only requires the baseline
// vector unit of the architecture.
func init() {
	level := cpu.SIMDSSE2
	if runtime.GOARCH == "arm64" {
		level = cpu.SIMDNEON
	}

	Global.Register(Entry{
		Name:      "vecmath",
		SIMDLevel: level,
		Priority:  20,
		Product:   productVecmath,
	})
}

func productVecmath(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	return vecmath.DotProduct(a[:n], b[:n])
}
