package dot

import "github.com/cwbudde/algo-vecmath/cpu"

func init() {
	Global.Register(Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Product:   productGeneric,
	})
	Global.Register(Entry{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  5,
		Product:   productUnrolled,
	})
}

func productGeneric(a, b []float64) float64 {
	n := min(len(a), len(b))
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// productUnrolled keeps four independent partial sums so the adds do not
// serialise on one register.
func productUnrolled(a, b []float64) float64 {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	var s0, s1, s2, s3 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}
