package special

import "math"

// SinPi returns sin(pi*x) with full accuracy near integer x, where the
// naive product pi*x loses the information that the result is tiny.
func SinPi(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	if x < 0 {
		return -SinPi(-x)
	}
	r := math.Mod(x, 2)
	switch {
	case r < 0.5:
		return math.Sin(math.Pi * r)
	case r < 1.5:
		// sin(pi*r) = sin(pi*(1-r)); 1-r is exact near the zero at r=1
		return math.Sin(math.Pi * (1 - r))
	default:
		return -math.Sin(math.Pi * (2 - r))
	}
}

// XLogY returns x*log(y), defined as 0 when x is 0 so that the
// (1-v)*log(a) exponent is well defined at v=1 for any a.
func XLogY(x, y float64) float64 {
	if x == 0 && !math.IsNaN(y) {
		return 0
	}
	return x * math.Log(y)
}

// gammaSign returns the sign of Gamma(x) as +1 or -1.
func gammaSign(x float64) float64 {
	_, s := math.Lgamma(x)
	return float64(s)
}
