package special

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// Half-integer orders have elementary closed forms, which cross every
// internal evaluation regime as x sweeps the thresholds.
func TestIvHalfIntegerClosedForms(t *testing.T) {
	for _, x := range []float64{0.3, 5, 40, 300} {
		pre := math.Sqrt(2 / (math.Pi * x))
		assert.InEpsilon(t, pre*math.Sinh(x), Iv(0.5, x), 1e-10, "I_1/2 x=%g", x)
		assert.InEpsilon(t, pre*math.Cosh(x), Iv(-0.5, x), 1e-10, "I_-1/2 x=%g", x)
	}
}

func TestJvHalfIntegerClosedForms(t *testing.T) {
	for _, x := range []float64{0.1, 1, 5, 19, 21, 100} {
		pre := math.Sqrt(2 / (math.Pi * x))
		assert.True(t, scalar.EqualWithinAbsOrRel(pre*math.Sin(x), Jv(0.5, x), 1e-13, 1e-7),
			"J_1/2 x=%g", x)
		assert.True(t, scalar.EqualWithinAbsOrRel(pre*math.Cos(x), Jv(-0.5, x), 1e-13, 1e-7),
			"J_-1/2 x=%g", x)
	}
}

func TestJvIntegerMatchesStdlib(t *testing.T) {
	for _, n := range []int{0, 1, 5, -3} {
		for _, x := range []float64{0.5, 4, 25} {
			assert.Equal(t, math.Jn(n, x), Jv(float64(n), x), "n=%d x=%g", n, x)
		}
	}
}

// Three-term recurrence J_{v-1} + J_{v+1} = (2v/x) J_v ties the series,
// Hankel and Miller paths to each other across their boundaries.
func TestJvRecurrenceConsistency(t *testing.T) {
	cases := []struct{ v, x float64 }{
		{10.3, 4},    // series
		{4.7, 30},    // Hankel
		{7.5, 120},   // Hankel, deep argument
		{45.7, 30},   // Miller (order far above argument)
		{60.25, 35},  // Miller
		{10.3, 20.5}, // straddles the series/large-x boundary
	}
	for _, c := range cases {
		jm := Jv(c.v-1, c.x)
		j0 := Jv(c.v, c.x)
		jp := Jv(c.v+1, c.x)
		lhs := jm + jp
		rhs := 2 * c.v / c.x * j0
		tol := 1e-9 * math.Max(math.Abs(jm), math.Max(math.Abs(j0), math.Abs(jp)))
		assert.InDelta(t, rhs, lhs, tol+1e-300, "v=%g x=%g", c.v, c.x)
	}
}

func TestIvRecurrenceConsistency(t *testing.T) {
	// I_{v-1} - I_{v+1} = (2v/x) I_v
	cases := []struct{ v, x float64 }{
		{10.3, 4},
		{25.6, 12},
		{3.2, 80},
		{0.75, 31}, // straddles the asymptotic cutoff
	}
	for _, c := range cases {
		lhs := Iv(c.v-1, c.x) - Iv(c.v+1, c.x)
		rhs := 2 * c.v / c.x * Iv(c.v, c.x)
		assert.InEpsilon(t, rhs, lhs, 1e-9, "v=%g x=%g", c.v, c.x)
	}
}

// I_{-n} = I_n + (2/pi) sin(pi n) K_n, checked against the elementary
// K at half-integer order. Larger x cancels the identity away entirely
// (the K side is e^{-2x} of the I side), so the sweep stops at 10.
func TestIvReflectionIdentity(t *testing.T) {
	kHalf := func(x float64) float64 { // K_{1/2}
		return math.Sqrt(math.Pi/(2*x)) * math.Exp(-x)
	}
	kThreeHalf := func(x float64) float64 { // K_{3/2}
		return math.Sqrt(math.Pi/(2*x)) * math.Exp(-x) * (1 + 1/x)
	}
	for _, x := range []float64{0.5, 2, 10} {
		got := Iv(-0.5, x) - Iv(0.5, x)
		want := 2 / math.Pi * SinPi(0.5) * kHalf(x)
		assert.InEpsilon(t, want, got, 1e-6, "nu=1/2 x=%g", x)

		got = Iv(-1.5, x) - Iv(1.5, x)
		want = 2 / math.Pi * SinPi(1.5) * kThreeHalf(x)
		assert.InEpsilon(t, want, got, 1e-6, "nu=3/2 x=%g", x)
	}
}

func TestBesselZeroArgument(t *testing.T) {
	assert.Equal(t, 1.0, Iv(0, 0))
	assert.Equal(t, 0.0, Iv(3.5, 0))
	assert.Equal(t, 0.0, Iv(-4, 0))
	assert.True(t, math.IsInf(Iv(-0.5, 0), 1))
	assert.Equal(t, 0.0, Jv(2.5, 0))
	assert.True(t, math.IsInf(Jv(-2.5, 0), 0))
}

func TestJvNegativeArgumentNonInteger(t *testing.T) {
	assert.True(t, math.IsNaN(Jv(0.5, -1)))
	// integer order is defined through parity
	assert.Equal(t, math.Jn(3, -2.5), Jv(3, -2.5))
}

// The complex primitives restricted to the real line must agree with
// the real ones.
func TestComplexBesselRealLineConsistency(t *testing.T) {
	for _, c := range []struct{ v, x float64 }{
		{0.5, 2}, {2.25, 8}, {-0.5, 40}, {7, 77},
	} {
		ref := Iv(c.v, c.x)
		got := IvC(c.v, complex(c.x, 0))
		assert.True(t, scalar.EqualWithinAbsOrRel(ref, real(got), 1e-13, 1e-9),
			"I v=%g x=%g", c.v, c.x)
	}
	for _, c := range []struct{ v, x float64 }{
		{0.5, 2}, {2.25, 8}, {-0.5, 30}, {1.75, 15},
	} {
		ref := Jv(c.v, c.x)
		got := JvC(c.v, complex(c.x, 0))
		assert.True(t, scalar.EqualWithinAbsOrRel(ref, real(got), 1e-13, 1e-9),
			"J v=%g x=%g", c.v, c.x)
	}
}

// J_v(iy) = e^{i v pi/2} I_v(y) for y > 0 on the principal branch.
func TestComplexBesselImaginaryAxisRotation(t *testing.T) {
	for _, c := range []struct{ v, y float64 }{
		{0.5, 3}, {2.25, 7},
	} {
		got := JvC(c.v, complex(0, c.y))
		rot := cmplx.Exp(complex(0, c.v*math.Pi/2))
		want := rot * complex(Iv(c.v, c.y), 0)
		assert.InDelta(t, real(want), real(got), 1e-10*cmplx.Abs(want), "re v=%g", c.v)
		assert.InDelta(t, imag(want), imag(got), 1e-10*cmplx.Abs(want), "im v=%g", c.v)
	}
}
