package dot

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-connectivity/internal/testutil"
)

func BenchmarkProduct(b *testing.B) {
	for _, n := range []int{64, 1200, 4800} {
		x := testutil.DeterministicNoise(1, 1, n)
		y := testutil.DeterministicNoise(2, 1, n)

		for _, entry := range Global.Entries() {
			b.Run(fmt.Sprintf("%s/%d", entry.Name, n), func(b *testing.B) {
				b.SetBytes(int64(16 * n))
				for i := 0; i < b.N; i++ {
					_ = entry.Product(x, y)
				}
			})
		}
	}
}
