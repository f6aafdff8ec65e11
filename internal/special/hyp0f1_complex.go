package special

import (
	"math"
	"math/cmplx"
)

// Hyp0F1C evaluates 0F1(;v;z) for real v and complex z.
//
// Structure mirrors Hyp0F1 but branches on the sign of Re(z) and has no
// asymptotic escape: range failures propagate from the complex Bessel
// primitives. The small-argument series keeps 1 + z/v and the quadratic
// term as separate intermediates; summing them in that order preserves
// the digits that survive when v nearly cancels -z.
func Hyp0F1C(v float64, z complex128) complex128 {
	if v <= 0 && v == math.Trunc(v) {
		return complex(math.NaN(), math.NaN())
	}
	if real(z) == 0 && imag(z) == 0 && v != 0 {
		return 1
	}
	if cmplx.Abs(z) < smallZThreshold*(1+math.Abs(v)) {
		t1 := 1 + z/complex(v, 0)
		t2 := z * z / complex(2*v*(v+1), 0)
		return t1 + t2
	}
	var arg, bess complex128
	if real(z) > 0 {
		arg = cmplx.Sqrt(z)
		bess = IvC(v-1, 2*arg)
	} else {
		arg = cmplx.Sqrt(-z)
		bess = JvC(v-1, 2*arg)
	}
	return bess * complex(math.Gamma(v), 0) * cmplx.Pow(arg, complex(1-v, 0))
}
