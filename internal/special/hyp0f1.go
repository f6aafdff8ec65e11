package special

import "math"

// Hyp0F1 evaluates the confluent hypergeometric limit function 0F1(;v;z)
// for real v and z. Non-positive integer v is a pole of the gamma
// prefactor and returns NaN.
//
// The positive axis predicts overflow/underflow of the direct Bessel
// evaluation from its log-space exponent and reroutes to the uniform
// asymptotic expansion instead of letting the product degrade to Inf, 0
// or NaN. The negative axis has no such guard: the oscillatory J branch
// is not the one that motivated the fallback, and the asymmetry is kept.
func Hyp0F1(v, z float64) float64 {
	if v <= 0 && v == math.Trunc(v) {
		return math.NaN()
	}
	if z == 0 && v != 0 {
		return 1
	}
	if math.Abs(z) < smallZThreshold*(1+math.Abs(v)) {
		// second-order Taylor truncation, exact to working precision here
		return 1 + z/v + z*z/(2*v*(v+1))
	}
	if z > 0 {
		a := math.Sqrt(z)
		lg, sg := math.Lgamma(v)
		e := XLogY(1-v, a) + lg
		b := Iv(v-1, 2*a)
		if e > MaxLog || e < MinLog || b == 0 || math.IsInf(b, 0) {
			// direct product would overflow or underflow in one factor
			return besselIeGamma(v, z)
		}
		return math.Exp(e) * float64(sg) * b
	}
	a := math.Sqrt(-z)
	return math.Pow(a, 1-v) * math.Gamma(v) * Jv(v-1, 2*a)
}
