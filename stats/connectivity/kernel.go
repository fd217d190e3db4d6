package connectivity

import (
	"math"

	"github.com/cwbudde/algo-connectivity/internal/dot"
)

// fisherZLimit keeps the Fisher Z transform finite.
const fisherZLimit = 0.999999

// kernel scores one pair of series. It is immutable and shared by all
// sweep workers.
type kernel struct {
	mode     Mode
	noDemean bool
	fisherZ  bool
	n        int
}

func newKernel(s Settings, n int) kernel {
	return kernel{
		mode:     s.Mode,
		noDemean: s.noDemean(),
		fisherZ:  s.fisherZ(),
		n:        n,
	}
}

// score returns the correlation or covariance of a and b.
func (k kernel) score(a Series, sa Statistics, b Series, sb Statistics) float64 {
	if k.mode == ModeCovariance {
		return k.covariance(a, sa, b, sb)
	}
	return k.correlation(a, sa, b, sb)
}

// correlation follows the Pearson product-moment form
// (sum(ab) - n*meanA*meanB) / (sqrtSSA * sqrtSSB).
func (k kernel) correlation(a Series, sa Statistics, b Series, sb Statistics) float64 {
	denom := sa.SqrtSumSquared * sb.SqrtSumSquared
	if denom == 0 {
		return 0
	}

	ssxy := crossProduct(a, b)
	if !k.noDemean {
		ssxy -= float64(k.n) * sa.Mean * sb.Mean
	}
	return k.finalize(ssxy / denom)
}

// covariance is the explicit two-pass sum over deviations, so it stays
// accurate where the single-pass spread has cancelled to zero.
func (k kernel) covariance(a Series, sa Statistics, b Series, sb Statistics) float64 {
	if sa.constant || sb.constant {
		return 0
	}

	var sum float64
	av, aok := a.Contiguous()
	bs, bok := b.(Strided)
	if aok && bok {
		off := 0
		for _, x := range av {
			sum += (x - sa.Mean) * (bs.data[off] - sb.Mean)
			off += bs.stride
		}
	} else {
		for i := range k.n {
			sum += (a.At(i) - sa.Mean) * (b.At(i) - sb.Mean)
		}
	}
	return sum / float64(k.n)
}

// self is the correlation of a series with itself. A constant series has
// no defined correlation and scores 0 like every other pairing with it.
func (k kernel) self(s Statistics) float64 {
	if s.SqrtSumSquared == 0 {
		return 0
	}
	return k.finalize(1)
}

// finalize clamps r into [-1, 1] or, with Fisher Z enabled, clamps it
// just inside (-1, 1) and returns atanh(r).
func (k kernel) finalize(r float64) float64 {
	if k.fisherZ {
		r = min(max(r, -fisherZLimit), fisherZLimit)
		return 0.5 * math.Log((1+r)/(1-r))
	}
	return min(max(r, -1), 1)
}

// crossProduct returns sum(a[i] * b[i]). Jointly contiguous views go
// through the dot-product primitive; two strided views walk both offsets
// in lock-step; anything else falls back to indexed access.
func crossProduct(a, b Series) float64 {
	av, aok := a.Contiguous()
	bv, bok := b.Contiguous()
	if aok && bok {
		return dot.Product(av, bv)
	}

	as, aok := a.(Strided)
	bs, bok := b.(Strided)
	if aok && bok {
		var sum float64
		aOff, bOff := 0, 0
		for range as.n {
			sum += as.data[aOff] * bs.data[bOff]
			aOff += as.stride
			bOff += bs.stride
		}
		return sum
	}

	var sum float64
	for i := range a.Len() {
		sum += a.At(i) * b.At(i)
	}
	return sum
}
