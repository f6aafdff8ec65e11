package special

import "math"

// besselIeGamma evaluates the scaled product
//
//	Gamma(v) * I_{v-1}(2*sqrt(z)) / sqrt(z)^(v-1)
//
// through the uniform large-order expansion DLMF 10.41, for z > 0. The
// two factors overflow and underflow individually, so the exponents are
// combined in log space before a single exponentiation. For v-1 < 0 the
// reflection I_{-n} = I_n + (2/pi) sin(pi n) K_n brings in the decaying
// branch, whose correction series carries the opposite parity signs.
//
// Only meaningful for large |v-1|; callers invoke it when the log-space
// range check on the direct Bessel path fires. It has no further
// fallback: out-of-range inputs propagate whatever exp produces.
func besselIeGamma(v, z float64) float64 {
	arg := math.Sqrt(z)
	v1 := math.Abs(v - 1)
	x := 2 * arg / v1
	p1 := math.Sqrt(1 + x*x)
	eta := p1 + math.Log(x) - math.Log1p(p1)

	lg, sg := math.Lgamma(v)
	b0 := -0.5*math.Log(p1) - 0.5*math.Log(2*math.Pi*v1) + lg

	// correction polynomials DLMF 10.41.10 in pp = 1/p1
	pp := 1 / p1
	p2 := pp * pp
	u1 := pp * (3 - 5*p2) / 24
	u2 := p2 * (81 - 462*p2 + 385*p2*p2) / 1152
	u3 := pp * p2 * (30375 - 369603*p2 + 765765*p2*p2 - 425425*p2*p2*p2) / 414720

	uI := 1 + u1/v1 + u2/(v1*v1) + u3/(v1*v1*v1)
	result := math.Exp(b0+v1*eta-v1*math.Log(arg)) * float64(sg) * uI

	if v-1 < 0 {
		uK := 1 - u1/v1 + u2/(v1*v1) - u3/(v1*v1*v1)
		result += math.Exp(b0-v1*eta+v1*math.Log(arg)) * float64(sg) * 2 * SinPi(v1) * uK
	}
	return result
}
